package handlers

import (
	"net/http"

	request "installer_crm/internal/adapter/http/dto/request"
	response "installer_crm/internal/adapter/http/dto/response"
	"installer_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	usecase usecase.IOfferUseCase
}

func NewOfferHandler(uc usecase.IOfferUseCase) *OfferHandler {
	return &OfferHandler{usecase: uc}
}

func (h *OfferHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromOffers(h.usecase.List(c.Request.Context())))
}

func (h *OfferHandler) Get(c *gin.Context) {
	offer, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// CreateHeader is step one of the offer flow.
func (h *OfferHandler) CreateHeader(c *gin.Context) {
	var payload request.OfferHeaderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	offer, err := h.usecase.CreateHeader(c.Request.Context(), payload.ToHeader())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOffer(offer))
}

// AssembleConstructions is step two: snapshot constructions and price.
func (h *OfferHandler) AssembleConstructions(c *gin.Context) {
	var payload request.AssembleOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	offer, err := h.usecase.AssembleConstructions(c.Request.Context(), c.Param("id"), payload.ConstructionIDs, payload.SettingsEntity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

func (h *OfferHandler) Update(c *gin.Context) {
	var payload request.OfferUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	existing, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	offer, err := h.usecase.Update(c.Request.Context(), payload.Apply(existing))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

func (h *OfferHandler) UpdateStatus(c *gin.Context) {
	var payload request.OfferStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	offer, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ToStatus())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

func (h *OfferHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
