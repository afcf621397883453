package handlers

import (
	"errors"
	"net/http"

	"installer_crm/internal/domain/deriver"
	"installer_crm/internal/usecase"
	"installer_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, deriver.ErrInvalidGeometry):
		return pkg.NewDomainError("INVALID_GEOMETRY", "Invalid construction geometry", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidClientStatus),
		errors.Is(err, usecase.ErrInvalidOfferHeader),
		errors.Is(err, usecase.ErrInvalidOfferStatus),
		errors.Is(err, usecase.ErrInvalidRate),
		errors.Is(err, usecase.ErrInvalidSettings),
		errors.Is(err, usecase.ErrInvalidEvent):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConstructionNotFound):
		return pkg.NewDomainError("CONSTRUCTION_NOT_FOUND", "Construction not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainError("CLIENT_NOT_FOUND", "Client not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainError("OFFER_NOT_FOUND", "Offer not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainError("EVENT_NOT_FOUND", "Calendar event not found", err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// writeError answers with the mapped error. Validation errors carry their
// message as details so forms can show it inline.
func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus == http.StatusBadRequest {
		c.JSON(appErr.HTTPStatus, appErr.WithDetails(err.Error()))
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
