package entities

type ClientStatus string

const (
	ClientStatusLead     ClientStatus = "lead"
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientStatusLead, ClientStatusActive, ClientStatusInactive:
		return true
	}
	return false
}

// Client is a CRM contact. Offers reference it by Name.
type Client struct {
	Meta
	Name           string       `json:"name"`
	Status         ClientStatus `json:"status"`
	Email          string       `json:"email,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	Address        string       `json:"address,omitempty"`
	TaxID          string       `json:"tax_id,omitempty"`
	BillingAddress string       `json:"billing_address,omitempty"`
	Notes          string       `json:"notes,omitempty"`
}

func (c Client) GetMeta() Meta { return c.Meta }

func (c Client) WithMeta(m Meta) Client {
	c.Meta = m
	return c
}
