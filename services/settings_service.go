package services

import (
	"context"

	"github.com/mirkashi/Grazieoutfits/apperrors"
	"github.com/mirkashi/Grazieoutfits/models"
	"github.com/mirkashi/Grazieoutfits/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SettingsUpdateRequest is a partial update of the settings document. Only
// the sections present in the request body are replaced; omitted sections
// keep their stored values.
type SettingsUpdateRequest struct {
	EmailConfig    *models.EmailConfig    `json:"emailConfig"`
	ShippingRates  *[]models.ShippingRate `json:"shippingRates"`
	PaymentMethods *models.PaymentMethods `json:"paymentMethods"`
	BusinessInfo   *models.BusinessInfo   `json:"businessInfo"`
}

// SettingsService manages the singleton configuration document.
type SettingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the settings document, seeding the defaults on first access.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return settings, nil
}

// Update replaces only the sections carried by req, after making sure the
// document exists so a first-ever partial update still lands on the full
// default seed.
func (s *SettingsService) Update(ctx context.Context, req SettingsUpdateRequest) (*models.Settings, error) {
	current, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	updates := bson.M{}
	if req.EmailConfig != nil {
		updates["email_config"] = *req.EmailConfig
	}
	if req.ShippingRates != nil {
		updates["shipping_rates"] = *req.ShippingRates
	}
	if req.PaymentMethods != nil {
		updates["payment_methods"] = *req.PaymentMethods
	}
	if req.BusinessInfo != nil {
		updates["business_info"] = *req.BusinessInfo
	}
	if len(updates) == 0 {
		return current, nil
	}

	updated, err := s.repo.Update(ctx, updates)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	return updated, nil
}

// PreviewShippingRate resolves the shipping cost for a region without any
// side effects; an absent settings document yields the default rate and does
// not trigger lazy creation.
func (s *SettingsService) PreviewShippingRate(ctx context.Context, region string) (int64, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.DefaultShippingRate, nil
		}
		return 0, apperrors.Internal(err)
	}
	return ResolveShippingRate(region, settings), nil
}
