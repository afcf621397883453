package handlers

import (
	"net/http"

	request "installer_crm/internal/adapter/http/dto/request"
	response "installer_crm/internal/adapter/http/dto/response"
	"installer_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) Company(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCompanySettings(h.usecase.Company(c.Request.Context())))
}

func (h *SettingsHandler) SaveCompany(c *gin.Context) {
	var payload request.CompanySettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	saved, err := h.usecase.SaveCompany(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompanySettings(saved))
}

func (h *SettingsHandler) Transport(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTransportSettings(h.usecase.Transport(c.Request.Context())))
}

func (h *SettingsHandler) SaveTransport(c *gin.Context) {
	var payload request.TransportSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	saved, err := h.usecase.SaveTransport(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransportSettings(saved))
}
