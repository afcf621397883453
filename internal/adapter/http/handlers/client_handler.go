package handlers

import (
	"net/http"

	request "installer_crm/internal/adapter/http/dto/request"
	response "installer_crm/internal/adapter/http/dto/response"
	"installer_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromClients(h.usecase.List(c.Request.Context())))
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) Create(c *gin.Context) {
	h.save(c, "", http.StatusCreated)
}

// Update saves the client; a changed name is carried into its offers.
func (h *ClientHandler) Update(c *gin.Context) {
	h.save(c, c.Param("id"), http.StatusOK)
}

func (h *ClientHandler) save(c *gin.Context, id string, status int) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	client, err := h.usecase.Save(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, response.FromClient(client))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
