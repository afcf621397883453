package request

import (
	"strings"

	"installer_crm/internal/domain/entities"
)

type ClientRequest struct {
	Name           string `json:"name" binding:"required"`
	Status         string `json:"status"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	TaxID          string `json:"tax_id"`
	BillingAddress string `json:"billing_address"`
	Notes          string `json:"notes"`
}

// ToEntity builds the client; id is empty for creates.
func (r ClientRequest) ToEntity(id string) entities.Client {
	return entities.Client{
		Meta:           entities.Meta{ID: strings.TrimSpace(id)},
		Name:           r.Name,
		Status:         entities.ClientStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		Email:          strings.TrimSpace(r.Email),
		Phone:          strings.TrimSpace(r.Phone),
		Address:        r.Address,
		TaxID:          strings.TrimSpace(r.TaxID),
		BillingAddress: r.BillingAddress,
		Notes:          r.Notes,
	}
}
