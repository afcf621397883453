package routes

import (
	"net/http"

	"installer_crm/internal/identity"
	"installer_crm/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

type statusResponse struct {
	Remote    bool   `json:"remote"`
	Anonymous bool   `json:"anonymous"`
	OwnerID   string `json:"owner_id,omitempty"`
}

func addPingRoutes(rg *gin.RouterGroup, reachability interfaces.IReachability) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// status runs the same probe the stores use before a remote call.
	rg.GET("/status", func(c *gin.Context) {
		ctx := c.Request.Context()
		owner, ok := identity.Owner(ctx)
		c.JSON(http.StatusOK, statusResponse{
			Remote:    reachability != nil && reachability.Probe(ctx),
			Anonymous: !ok,
			OwnerID:   owner,
		})
	})
}
