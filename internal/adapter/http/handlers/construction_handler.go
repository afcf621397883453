package handlers

import (
	"net/http"

	request "installer_crm/internal/adapter/http/dto/request"
	response "installer_crm/internal/adapter/http/dto/response"
	"installer_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ConstructionHandler serves the construction list and the rate table.
type ConstructionHandler struct {
	usecase usecase.IConstructionUseCase
}

func NewConstructionHandler(uc usecase.IConstructionUseCase) *ConstructionHandler {
	return &ConstructionHandler{usecase: uc}
}

func (h *ConstructionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromConstructions(h.usecase.List(c.Request.Context())))
}

func (h *ConstructionHandler) Get(c *gin.Context) {
	item, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromConstruction(item))
}

func (h *ConstructionHandler) Create(c *gin.Context) {
	var payload request.ConstructionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	item, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.ToGeometry())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromConstruction(item))
}

func (h *ConstructionHandler) Update(c *gin.Context) {
	var payload request.ConstructionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	item, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.Name, payload.ToGeometry())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromConstruction(item))
}

func (h *ConstructionHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ConstructionHandler) DeleteAll(c *gin.Context) {
	h.usecase.DeleteAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *ConstructionHandler) Rates(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRateTable(h.usecase.Rates(c.Request.Context())))
}

// SetRate updates one rate table entry and returns every construction that
// was re-derived because of it.
func (h *ConstructionHandler) SetRate(c *gin.Context) {
	var payload request.RateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	table, updated, err := h.usecase.SetRate(c.Request.Context(), c.Param("type"), payload.ToEntry())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SetRateResponse{
		Rates:      response.FromRateTable(table),
		Recomputed: response.FromConstructions(updated),
	})
}
