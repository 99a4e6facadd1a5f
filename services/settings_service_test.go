package services

import (
	"context"
	"testing"

	"github.com/mirkashi/Grazieoutfits/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsGet_SeedsDefaultsWhenAbsent(t *testing.T) {
	repo := &mockSettingsRepo{}
	svc := NewSettingsService(repo)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, settings)

	assert.Equal(t, 1, repo.getOrCreateCalled)
	rates := map[string]int64{}
	for _, r := range settings.ShippingRates {
		rates[r.Region] = r.Rate
	}
	assert.Equal(t, int64(150), rates["Islamabad"])
	assert.Equal(t, int64(250), rates["Karachi"])
	assert.Equal(t, int64(200), rates["Other"])
}

func TestSettingsGet_ReturnsExistingDocument(t *testing.T) {
	existing := &models.Settings{
		ShippingRates: []models.ShippingRate{{Region: "Lahore", Rate: 999}},
	}
	repo := &mockSettingsRepo{settings: existing}
	svc := NewSettingsService(repo)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, existing, settings)
}

func TestSettingsUpdate_ReplacesOnlySubmittedSections(t *testing.T) {
	stored := models.DefaultSettings()
	stored.EmailConfig = models.EmailConfig{
		SMTPHost:  "smtp.example.com",
		SMTPPort:  465,
		SMTPUser:  "orders@example.com",
		FromEmail: "orders@example.com",
	}
	repo := &mockSettingsRepo{settings: stored}
	svc := NewSettingsService(repo)

	rates := []models.ShippingRate{{Region: "Multan", Rate: 180}}
	out, err := svc.Update(context.Background(), SettingsUpdateRequest{ShippingRates: &rates})
	require.NoError(t, err)

	assert.Equal(t, rates, out.ShippingRates)
	// The untouched sections must survive a rates-only update.
	assert.Equal(t, "smtp.example.com", out.EmailConfig.SMTPHost)
	assert.Equal(t, "Grazie Outfits", out.BusinessInfo.Name)

	_, touchedEmail := repo.lastUpdates["email_config"]
	_, touchedPayments := repo.lastUpdates["payment_methods"]
	_, touchedBusiness := repo.lastUpdates["business_info"]
	assert.False(t, touchedEmail)
	assert.False(t, touchedPayments)
	assert.False(t, touchedBusiness)
}

func TestSettingsUpdate_EmptyBodyIsANoOp(t *testing.T) {
	stored := models.DefaultSettings()
	repo := &mockSettingsRepo{settings: stored}
	svc := NewSettingsService(repo)

	out, err := svc.Update(context.Background(), SettingsUpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, stored, out)
	assert.Nil(t, repo.lastUpdates)
}

func TestPreviewShippingRate_NoDocumentFallsBackWithoutCreating(t *testing.T) {
	repo := &mockSettingsRepo{}
	svc := NewSettingsService(repo)

	rate, err := svc.PreviewShippingRate(context.Background(), "Lahore")
	require.NoError(t, err)

	assert.Equal(t, models.DefaultShippingRate, rate)
	// Reading a quote must not create the settings document.
	assert.Equal(t, 0, repo.getOrCreateCalled)
	assert.Nil(t, repo.settings)
}

func TestPreviewShippingRate_UsesConfiguredRate(t *testing.T) {
	repo := &mockSettingsRepo{settings: &models.Settings{
		ShippingRates: []models.ShippingRate{
			{Region: "Lahore", Rate: 200},
			{Region: "Karachi", Rate: 250},
		},
	}}
	svc := NewSettingsService(repo)

	rate, err := svc.PreviewShippingRate(context.Background(), "Karachi")
	require.NoError(t, err)
	assert.Equal(t, int64(250), rate)

	rate, err = svc.PreviewShippingRate(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultShippingRate, rate)
}
