package usecase

import (
	"installer_crm/internal/adapter/persistence/store"
	"installer_crm/internal/domain/entities"
	"installer_crm/internal/infrastructure/cache"
)

// testStores are local-only stores over one in-memory cache.
type testStores struct {
	cache         *cache.MemoryCache
	clients       *store.EntityStore[entities.Client]
	offers        *store.EntityStore[entities.Offer]
	constructions *store.EntityStore[entities.Construction]
	events        *store.EntityStore[entities.CalendarEvent]
	rates         *store.DocumentStore[entities.RateTable]
	company       *store.DocumentStore[entities.CompanySettings]
	transport     *store.DocumentStore[entities.TransportSettings]
}

func newTestStores() *testStores {
	c := cache.NewMemoryCache()
	return &testStores{
		cache:         c,
		clients:       store.NewEntityStore[entities.Client](store.KindClients, c, nil, nil),
		offers:        store.NewEntityStore[entities.Offer](store.KindOffers, c, nil, nil),
		constructions: store.NewEntityStore[entities.Construction](store.KindConstructions, c, nil, nil),
		events:        store.NewEntityStore[entities.CalendarEvent](store.KindCalendarEvents, c, nil, nil),
		rates:         store.NewDocumentStore[entities.RateTable](store.KindRateTable, c, nil, nil, entities.DefaultRateTable),
		company: store.NewDocumentStore[entities.CompanySettings](store.KindCompanySettings, c, nil, nil, func() entities.CompanySettings {
			return entities.CompanySettings{}
		}),
		transport: store.NewDocumentStore[entities.TransportSettings](store.KindTransportSettings, c, nil, nil, func() entities.TransportSettings {
			return entities.TransportSettings{}
		}),
	}
}

func (s *testStores) offerUseCase() *OfferUseCase {
	return NewOfferUseCase(s.offers, s.constructions, s.rates, s.company, s.transport, nil)
}

func window() entities.Geometry {
	return entities.Geometry{
		Width:                1500,
		Height:               1500,
		Quantity:             1,
		Type:                 "window",
		InstallationLocation: entities.LocationInterior,
		Weight:               80,
	}
}
