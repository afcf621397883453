package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"installer_crm/internal/domain/entities"
	"installer_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// batchLimit is the maximum number of write requests DynamoDB accepts per
// BatchWriteItem call.
const batchLimit = 25

// maxBatchRetries bounds how often unprocessed batch items are resubmitted.
const maxBatchRetries = 3

// batchRetryBase is the delay before the first resubmission; it doubles on
// every further attempt.
const batchRetryBase = 50 * time.Millisecond

// DynamoAPI is the subset of *dynamodb.Client used by DynamoTable.
type DynamoAPI interface {
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	BatchWriteItem(ctx context.Context, in *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

type tableItem struct {
	OwnerID   string `dynamodbav:"owner_id"`
	ID        string `dynamodbav:"id"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	Payload   string `dynamodbav:"payload"`
}

// DynamoTable stores one entity kind in a DynamoDB table.
//
// Table requirements:
//   - PK: owner_id (string)
//   - SK: id (string)
//
// The entity body is kept as a JSON string in "payload" so the schema can
// evolve without table migrations.
type DynamoTable[T entities.Entity[T]] struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
	retryBase time.Duration
}

var _ interfaces.IRemoteTable[entities.Offer] = (*DynamoTable[entities.Offer])(nil)

func NewDynamoTable[T entities.Entity[T]](ddb DynamoAPI, tableName string) *DynamoTable[T] {
	return &DynamoTable[T]{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
		retryBase: batchRetryBase,
	}
}

// List returns the owner's records ordered by creation time.
func (r *DynamoTable[T]) List(ctx context.Context, ownerID string) ([]T, error) {
	in := r.ownerQuery(ownerID)
	p := dynamodb.NewQueryPaginator(r.ddb, in)

	out := []T{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it tableItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			v, err := fromTableItem[T](it)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GetMeta().CreatedAt.Before(out[j].GetMeta().CreatedAt)
	})
	return out, nil
}

// Upsert writes item and returns the stored record. An existing created_at
// is never overwritten.
func (r *DynamoTable[T]) Upsert(ctx context.Context, ownerID string, item T) (T, error) {
	var zero T
	it, err := toTableItem(ownerID, item)
	if err != nil {
		return zero, err
	}
	if it.UpdatedAt == "" {
		it.UpdatedAt = formatTime(r.now())
	}
	if it.CreatedAt == "" {
		it.CreatedAt = it.UpdatedAt
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemKey(ownerID, it.ID),
		UpdateExpression: aws.String(
			"SET #payload = :payload, #updated_at = :updated_at, #created_at = if_not_exists(#created_at, :created_at)",
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payload":    &types.AttributeValueMemberS{Value: it.Payload},
			":updated_at": &types.AttributeValueMemberS{Value: it.UpdatedAt},
			":created_at": &types.AttributeValueMemberS{Value: it.CreatedAt},
		},
		ExpressionAttributeNames: map[string]string{
			"#payload":    "payload",
			"#updated_at": "updated_at",
			"#created_at": "created_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return zero, err
	}
	if len(out.Attributes) == 0 {
		return item, nil
	}
	var stored tableItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &stored); err != nil {
		return zero, err
	}
	return fromTableItem[T](stored)
}

// UpsertAll writes items with batched puts.
func (r *DynamoTable[T]) UpsertAll(ctx context.Context, ownerID string, items []T) error {
	reqs := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		it, err := toTableItem(ownerID, item)
		if err != nil {
			return err
		}
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return r.batchWrite(ctx, reqs)
}

func (r *DynamoTable[T]) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemKey(ownerID, id),
	})
	return err
}

// DeleteAll removes every record of the owner.
func (r *DynamoTable[T]) DeleteAll(ctx context.Context, ownerID string) error {
	in := r.ownerQuery(ownerID)
	in.ProjectionExpression = aws.String("#owner_id, #id")
	in.ExpressionAttributeNames["#id"] = "id"
	p := dynamodb.NewQueryPaginator(r.ddb, in)

	var reqs []types.WriteRequest
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, raw := range page.Items {
			reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{"owner_id": raw["owner_id"], "id": raw["id"]},
			}})
		}
	}
	return r.batchWrite(ctx, reqs)
}

// Ping issues the cheapest authenticated read against the table.
func (r *DynamoTable[T]) Ping(ctx context.Context, ownerID string) error {
	in := r.ownerQuery(ownerID)
	in.Limit = aws.Int32(1)
	_, err := r.ddb.Query(ctx, in)
	return err
}

func (r *DynamoTable[T]) ownerQuery(ownerID string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#owner_id = :owner_id"),
		ExpressionAttributeNames: map[string]string{
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
	}
}

func (r *DynamoTable[T]) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	for _, chunk := range chunkRequests(reqs, batchLimit) {
		pending := map[string][]types.WriteRequest{r.tableName: chunk}
		for attempt := 0; len(pending[r.tableName]) > 0; attempt++ {
			if attempt == maxBatchRetries {
				return fmt.Errorf("dynamodb %s: %d items left unprocessed", r.tableName, len(pending[r.tableName]))
			}
			if attempt > 0 {
				if err := wait(ctx, r.retryBase<<(attempt-1)); err != nil {
					return err
				}
			}
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func chunkRequests(reqs []types.WriteRequest, size int) [][]types.WriteRequest {
	var chunks [][]types.WriteRequest
	for len(reqs) > size {
		chunks = append(chunks, reqs[:size])
		reqs = reqs[size:]
	}
	if len(reqs) > 0 {
		chunks = append(chunks, reqs)
	}
	return chunks
}

func itemKey(ownerID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"owner_id": &types.AttributeValueMemberS{Value: ownerID},
		"id":       &types.AttributeValueMemberS{Value: id},
	}
}

func toTableItem[T entities.Entity[T]](ownerID string, v T) (tableItem, error) {
	m := v.GetMeta()
	if m.ID == "" {
		return tableItem{}, fmt.Errorf("dynamodb: record without id")
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return tableItem{}, err
	}
	return tableItem{
		OwnerID:   ownerID,
		ID:        m.ID,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
		Payload:   string(payload),
	}, nil
}

func fromTableItem[T entities.Entity[T]](it tableItem) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(it.Payload), &v); err != nil {
		return v, fmt.Errorf("dynamodb: decode payload of %s: %w", it.ID, err)
	}
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return v, fmt.Errorf("dynamodb: created_at of %s: %w", it.ID, err)
	}
	updatedAt, err := parseTime(it.UpdatedAt)
	if err != nil {
		return v, fmt.Errorf("dynamodb: updated_at of %s: %w", it.ID, err)
	}
	return v.WithMeta(entities.Meta{ID: it.ID, CreatedAt: createdAt, UpdatedAt: updatedAt}), nil
}

// parseTime reads a stored timestamp; an empty attribute is the zero time.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
