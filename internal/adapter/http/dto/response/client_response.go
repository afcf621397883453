package response

import (
	"time"

	"installer_crm/internal/domain/entities"
)

type ClientResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	TaxID          string    `json:"tax_id,omitempty"`
	BillingAddress string    `json:"billing_address,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Status:         string(c.Status),
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		TaxID:          c.TaxID,
		BillingAddress: c.BillingAddress,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromClients(items []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromClient(c))
	}
	return out
}
