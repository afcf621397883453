package handlers

import (
	"net/http"

	request "installer_crm/internal/adapter/http/dto/request"
	response "installer_crm/internal/adapter/http/dto/response"
	"installer_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc}
}

func (h *CalendarHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCalendarEvents(h.usecase.List(c.Request.Context())))
}

func (h *CalendarHandler) Create(c *gin.Context) {
	h.save(c, "", http.StatusCreated)
}

func (h *CalendarHandler) Update(c *gin.Context) {
	h.save(c, c.Param("id"), http.StatusOK)
}

func (h *CalendarHandler) save(c *gin.Context, id string, status int) {
	var payload request.CalendarEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	event, err := h.usecase.Save(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, response.FromCalendarEvent(event))
}

func (h *CalendarHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
