package routes

import (
	"installer_crm/internal/adapter/http/handlers"
	"installer_crm/internal/adapter/persistence/probe"
	"installer_crm/internal/adapter/persistence/repository"
	"installer_crm/internal/adapter/persistence/store"
	"installer_crm/internal/config"
	"installer_crm/internal/domain/entities"
	"installer_crm/internal/observability"
	"installer_crm/internal/platform/logger"
	"installer_crm/internal/usecase"
	"installer_crm/internal/usecase/interfaces"
)

// app holds the handlers mounted by the router.
type app struct {
	constructions *handlers.ConstructionHandler
	clients       *handlers.ClientHandler
	offers        *handlers.OfferHandler
	calendar      *handlers.CalendarHandler
	settings      *handlers.SettingsHandler
	status        interfaces.IReachability
}

type remote[T entities.Entity[T]] struct {
	table interfaces.IRemoteTable[T]
	probe interfaces.IReachability
}

// newRemote returns the table and probe for one kind. With no DynamoDB client
// the table stays nil and the probe always reports unreachable.
func newRemote[T entities.Entity[T]](ddb repository.DynamoAPI, tableName string, log *logger.Logger) remote[T] {
	if ddb == nil {
		return remote[T]{probe: probe.Disabled{}}
	}
	t := repository.NewDynamoTable[T](ddb, tableName)
	return remote[T]{table: t, probe: probe.NewRemoteProbe(t, 0, log.With("table", tableName))}
}

func newApp(kv interfaces.IKeyValueCache, ddb repository.DynamoAPI, tables config.TableNames, log *logger.Logger, metrics *observability.Metrics) *app {
	opts := []store.Option{store.WithLogger(log), store.WithMetrics(metrics)}

	clientsRemote := newRemote[entities.Client](ddb, tables.Clients, log)
	constructionsRemote := newRemote[entities.Construction](ddb, tables.Constructions, log)
	offersRemote := newRemote[entities.Offer](ddb, tables.Offers, log)
	eventsRemote := newRemote[entities.CalendarEvent](ddb, tables.CalendarEvents, log)
	ratesRemote := newRemote[entities.RateTable](ddb, tables.RateTable, log)
	companyRemote := newRemote[entities.CompanySettings](ddb, tables.CompanySettings, log)
	transportRemote := newRemote[entities.TransportSettings](ddb, tables.TransportSettings, log)

	clients := store.NewEntityStore(store.KindClients, kv, clientsRemote.table, clientsRemote.probe, opts...)
	constructions := store.NewEntityStore(store.KindConstructions, kv, constructionsRemote.table, constructionsRemote.probe, opts...)
	offers := store.NewEntityStore(store.KindOffers, kv, offersRemote.table, offersRemote.probe, opts...)
	events := store.NewEntityStore(store.KindCalendarEvents, kv, eventsRemote.table, eventsRemote.probe, opts...)
	rates := store.NewDocumentStore(store.KindRateTable, kv, ratesRemote.table, ratesRemote.probe, entities.DefaultRateTable, opts...)
	company := store.NewDocumentStore(store.KindCompanySettings, kv, companyRemote.table, companyRemote.probe,
		func() entities.CompanySettings { return entities.CompanySettings{} }, opts...)
	transport := store.NewDocumentStore(store.KindTransportSettings, kv, transportRemote.table, transportRemote.probe,
		func() entities.TransportSettings { return entities.TransportSettings{} }, opts...)

	offerUseCase := usecase.NewOfferUseCase(offers, constructions, rates, company, transport, log)
	clientUseCase := usecase.NewClientUseCase(clients, offerUseCase, log)
	constructionUseCase := usecase.NewConstructionUseCase(constructions, rates, log)
	calendarUseCase := usecase.NewCalendarUseCase(events)
	settingsUseCase := usecase.NewSettingsUseCase(company, transport)

	return &app{
		constructions: handlers.NewConstructionHandler(constructionUseCase),
		clients:       handlers.NewClientHandler(clientUseCase),
		offers:        handlers.NewOfferHandler(offerUseCase),
		calendar:      handlers.NewCalendarHandler(calendarUseCase),
		settings:      handlers.NewSettingsHandler(settingsUseCase),
		status:        clientsRemote.probe,
	}
}
