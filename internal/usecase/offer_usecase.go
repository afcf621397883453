package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"installer_crm/internal/domain/deriver"
	"installer_crm/internal/domain/entities"
	"installer_crm/internal/platform/logger"
	"installer_crm/internal/usecase/interfaces"
)

// OfferHeader is the first step of the offer flow.
type OfferHeader struct {
	ClientName string
	Title      string
	Location   string
	Notes      string
}

// IOfferUseCase exposes the offer lifecycle.
//
// Offers are created in two steps:
//   - CreateHeader stores a draft with client, title and location
//   - AssembleConstructions snapshots constructions and prices the offer
type IOfferUseCase interface {
	List(ctx context.Context) []entities.Offer
	Get(ctx context.Context, id string) (entities.Offer, error)
	CreateHeader(ctx context.Context, h OfferHeader) (entities.Offer, error)
	AssembleConstructions(ctx context.Context, id string, constructionIDs []string, settings *entities.OfferSettings) (entities.Offer, error)
	Update(ctx context.Context, o entities.Offer) (entities.Offer, error)
	UpdateStatus(ctx context.Context, id string, status entities.OfferStatus) (entities.Offer, error)
	Delete(ctx context.Context, id string) error
	RenameClient(ctx context.Context, oldName, newName string) int
}

type OfferUseCase struct {
	offers        interfaces.IEntityStore[entities.Offer]
	constructions interfaces.IEntityStore[entities.Construction]
	rates         interfaces.IDocumentStore[entities.RateTable]
	company       interfaces.IDocumentStore[entities.CompanySettings]
	transport     interfaces.IDocumentStore[entities.TransportSettings]
	log           *logger.Logger
}

var (
	_ IOfferUseCase  = (*OfferUseCase)(nil)
	_ IClientRenamer = (*OfferUseCase)(nil)
)

func NewOfferUseCase(
	offers interfaces.IEntityStore[entities.Offer],
	constructions interfaces.IEntityStore[entities.Construction],
	rates interfaces.IDocumentStore[entities.RateTable],
	company interfaces.IDocumentStore[entities.CompanySettings],
	transport interfaces.IDocumentStore[entities.TransportSettings],
	log *logger.Logger,
) *OfferUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &OfferUseCase{
		offers:        offers,
		constructions: constructions,
		rates:         rates,
		company:       company,
		transport:     transport,
		log:           log,
	}
}

func (u *OfferUseCase) List(ctx context.Context) []entities.Offer {
	return u.offers.Load(ctx)
}

func (u *OfferUseCase) Get(ctx context.Context, id string) (entities.Offer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Offer{}, ErrInvalidID
	}
	o, ok := u.offers.Get(ctx, id)
	if !ok {
		return entities.Offer{}, ErrOfferNotFound
	}
	return o, nil
}

// CreateHeader stores a draft offer whose settings start from the company
// and transport defaults.
func (u *OfferUseCase) CreateHeader(ctx context.Context, h OfferHeader) (entities.Offer, error) {
	h.ClientName = strings.TrimSpace(h.ClientName)
	h.Title = strings.TrimSpace(h.Title)
	if h.ClientName == "" || h.Title == "" {
		return entities.Offer{}, ErrInvalidOfferHeader
	}

	o := entities.Offer{
		ClientID:      h.ClientName,
		Title:         h.Title,
		Location:      strings.TrimSpace(h.Location),
		Notes:         h.Notes,
		Status:        entities.OfferStatusDraft,
		Constructions: []entities.Construction{},
		Settings:      u.defaultSettings(ctx),
	}
	return u.offers.Save(ctx, o), nil
}

// AssembleConstructions copies the referenced constructions into the offer
// and prices it. A nil settings keeps the offer's current settings. The rate
// table is snapshotted when the settings carry none.
func (u *OfferUseCase) AssembleConstructions(ctx context.Context, id string, constructionIDs []string, settings *entities.OfferSettings) (entities.Offer, error) {
	o, err := u.Get(ctx, id)
	if err != nil {
		return entities.Offer{}, err
	}
	if settings != nil {
		if err := validateOfferSettings(*settings); err != nil {
			return entities.Offer{}, err
		}
		o.Settings = *settings
	}
	if len(o.Settings.RateTable.Entries) == 0 {
		o.Settings.RateTable = u.rates.Get(ctx)
	}
	o.Settings.RateTable = o.Settings.RateTable.Clone()

	snapshot := make([]entities.Construction, 0, len(constructionIDs))
	for _, cid := range constructionIDs {
		c, ok := u.constructions.Get(ctx, strings.TrimSpace(cid))
		if !ok {
			return entities.Offer{}, fmt.Errorf("%w: %s", ErrConstructionNotFound, cid)
		}
		snapshot = append(snapshot, c.Clone())
	}
	o.Constructions = snapshot
	o.Totals = deriver.PriceOffer(o.Constructions, o.Settings)
	return u.offers.Save(ctx, o), nil
}

// Update replaces the offer by id and reprices its snapshot.
func (u *OfferUseCase) Update(ctx context.Context, o entities.Offer) (entities.Offer, error) {
	existing, err := u.Get(ctx, o.ID)
	if err != nil {
		return entities.Offer{}, err
	}
	o.ClientID = strings.TrimSpace(o.ClientID)
	o.Title = strings.TrimSpace(o.Title)
	if o.ClientID == "" || o.Title == "" {
		return entities.Offer{}, ErrInvalidOfferHeader
	}
	if o.Status == "" {
		o.Status = existing.Status
	}
	if !o.Status.Valid() {
		return entities.Offer{}, ErrInvalidOfferStatus
	}
	if err := validateOfferSettings(o.Settings); err != nil {
		return entities.Offer{}, err
	}
	if o.Constructions == nil {
		o.Constructions = []entities.Construction{}
	}
	o.CreatedAt = existing.CreatedAt
	o.Totals = deriver.PriceOffer(o.Constructions, o.Settings)
	return u.offers.Save(ctx, o), nil
}

func (u *OfferUseCase) UpdateStatus(ctx context.Context, id string, status entities.OfferStatus) (entities.Offer, error) {
	if !status.Valid() {
		return entities.Offer{}, ErrInvalidOfferStatus
	}
	o, err := u.Get(ctx, id)
	if err != nil {
		return entities.Offer{}, err
	}
	o.Status = status
	return u.offers.Save(ctx, o), nil
}

func (u *OfferUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	u.offers.Delete(ctx, id)
	return nil
}

// RenameClient points every offer of oldName at newName and persists the
// offer list in one pass. It returns the number of offers changed.
func (u *OfferUseCase) RenameClient(ctx context.Context, oldName, newName string) int {
	if oldName == "" || newName == "" || oldName == newName {
		return 0
	}
	items := u.offers.Items(ctx)
	now := time.Now().UTC()
	changed := 0
	for i := range items {
		if items[i].ClientID == oldName {
			items[i].ClientID = newName
			items[i].UpdatedAt = now
			changed++
		}
	}
	if changed > 0 {
		u.offers.SaveAll(ctx, items)
	}
	return changed
}

func (u *OfferUseCase) defaultSettings(ctx context.Context) entities.OfferSettings {
	var s entities.OfferSettings
	if u.company != nil {
		c := u.company.Get(ctx)
		s.MarginPct = c.DefaultMarginPct
		s.DiscountPct = c.DefaultDiscountPct
	}
	if u.transport != nil {
		t := u.transport.Get(ctx)
		s.LaborRate = t.LaborRate
		s.TransportKm = t.DefaultKm
		s.TransportRatePerKm = t.RatePerKm
		s.TransportFlatFee = t.FlatFee
	}
	return s
}

func validateOfferSettings(s entities.OfferSettings) error {
	if s.MarginPct < 0 || s.DiscountPct < 0 || s.DiscountPct > 100 {
		return ErrInvalidSettings
	}
	if s.LaborHours < 0 || s.LaborRate < 0 || s.TransportKm < 0 || s.TransportRatePerKm < 0 || s.TransportFlatFee < 0 {
		return ErrInvalidSettings
	}
	return nil
}
