package usecase

import (
	"context"
	"strings"

	"installer_crm/internal/domain/entities"
	"installer_crm/internal/platform/logger"
	"installer_crm/internal/usecase/interfaces"
)

// IClientUseCase manages CRM clients.
type IClientUseCase interface {
	List(ctx context.Context) []entities.Client
	Get(ctx context.Context, id string) (entities.Client, error)
	Save(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

// IClientRenamer rewrites records that reference a client by name.
type IClientRenamer interface {
	RenameClient(ctx context.Context, oldName, newName string) int
}

type ClientUseCase struct {
	store   interfaces.IEntityStore[entities.Client]
	renamer IClientRenamer
	log     *logger.Logger
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(store interfaces.IEntityStore[entities.Client], renamer IClientRenamer, log *logger.Logger) *ClientUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &ClientUseCase{store: store, renamer: renamer, log: log}
}

func (u *ClientUseCase) List(ctx context.Context) []entities.Client {
	return u.store.Load(ctx)
}

func (u *ClientUseCase) Get(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidID
	}
	c, ok := u.store.Get(ctx, id)
	if !ok {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

// Save creates the client when it has no id and updates it otherwise.
// A changed name is propagated to every offer that carried the old one.
func (u *ClientUseCase) Save(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if c.Status == "" {
		c.Status = entities.ClientStatusLead
	}
	if !c.Status.Valid() {
		return entities.Client{}, ErrInvalidClientStatus
	}

	var previous entities.Client
	if c.ID != "" {
		prev, err := u.Get(ctx, c.ID)
		if err != nil {
			return entities.Client{}, err
		}
		previous = prev
		c.CreatedAt = prev.CreatedAt
	}

	saved := u.store.Save(ctx, c)

	if previous.ID != "" && previous.Name != saved.Name {
		if other, ok := u.findByName(ctx, saved.Name, saved.ID); ok {
			// Offers reference clients by name, so both clients now share them.
			u.log.Warn("client rename collides with an existing client name",
				"client_id", saved.ID, "other_client_id", other.ID, "name", saved.Name)
		}
		if u.renamer != nil {
			n := u.renamer.RenameClient(ctx, previous.Name, saved.Name)
			u.log.Info("client renamed", "client_id", saved.ID, "offers_updated", n)
		}
	}
	return saved, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	u.store.Delete(ctx, id)
	return nil
}

func (u *ClientUseCase) findByName(ctx context.Context, name, exceptID string) (entities.Client, bool) {
	for _, c := range u.store.Items(ctx) {
		if c.ID != exceptID && c.Name == name {
			return c, true
		}
	}
	return entities.Client{}, false
}
