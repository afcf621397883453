package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathConstructions = "/constructions"
	PathRates         = "/rates"
	PathClients       = "/clients"
	PathOffers        = "/offers"
	PathEvents        = "/events"
	PathSettings      = "/settings"
)

func addCRMRoutes(rg *gin.RouterGroup, a *app) {
	constructions := rg.Group(PathConstructions)
	{
		constructions.GET("", a.constructions.List)
		constructions.POST("", a.constructions.Create)
		constructions.DELETE("", a.constructions.DeleteAll)
		constructions.GET("/:id", a.constructions.Get)
		constructions.PUT("/:id", a.constructions.Update)
		constructions.DELETE("/:id", a.constructions.Delete)
	}

	rates := rg.Group(PathRates)
	{
		// Setting a rate recomputes every construction of that type.
		rates.GET("", a.constructions.Rates)
		rates.PUT("/:type", a.constructions.SetRate)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", a.clients.List)
		clients.POST("", a.clients.Create)
		clients.GET("/:id", a.clients.Get)
		clients.PUT("/:id", a.clients.Update)
		clients.DELETE("/:id", a.clients.Delete)
	}

	offers := rg.Group(PathOffers)
	{
		offers.GET("", a.offers.List)
		offers.POST("", a.offers.CreateHeader)
		offers.GET("/:id", a.offers.Get)
		offers.PUT("/:id", a.offers.Update)
		offers.PUT("/:id/constructions", a.offers.AssembleConstructions)
		offers.PATCH("/:id/status", a.offers.UpdateStatus)
		offers.DELETE("/:id", a.offers.Delete)
	}

	events := rg.Group(PathEvents)
	{
		events.GET("", a.calendar.List)
		events.POST("", a.calendar.Create)
		events.PUT("/:id", a.calendar.Update)
		events.DELETE("/:id", a.calendar.Delete)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("/company", a.settings.Company)
		settings.PUT("/company", a.settings.SaveCompany)
		settings.GET("/transport", a.settings.Transport)
		settings.PUT("/transport", a.settings.SaveTransport)
	}
}
