package usecase

import "errors"

var (
	ErrConstructionNotFound = errors.New("construction not found")
	ErrClientNotFound       = errors.New("client not found")
	ErrOfferNotFound        = errors.New("offer not found")
	ErrEventNotFound        = errors.New("calendar event not found")

	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidClientName   = errors.New("invalid client name")
	ErrInvalidClientStatus = errors.New("invalid client status")
	ErrInvalidOfferHeader  = errors.New("invalid offer header")
	ErrInvalidOfferStatus  = errors.New("invalid offer status")
	ErrInvalidRate         = errors.New("invalid rate entry")
	ErrInvalidSettings     = errors.New("invalid settings")
	ErrInvalidEvent        = errors.New("invalid calendar event")
)
