package services

import (
	"testing"

	"github.com/mirkashi/Grazieoutfits/models"
	"github.com/stretchr/testify/assert"
)

func ratesFixture() *models.Settings {
	return &models.Settings{
		ShippingRates: []models.ShippingRate{
			{Region: "Islamabad", Rate: 150},
			{Region: "Lahore", Rate: 200},
			{Region: "Karachi", Rate: 250},
		},
	}
}

func TestResolveShippingRate_ExactMatch(t *testing.T) {
	settings := ratesFixture()

	assert.Equal(t, int64(150), ResolveShippingRate("Islamabad", settings))
	assert.Equal(t, int64(200), ResolveShippingRate("Lahore", settings))
	assert.Equal(t, int64(250), ResolveShippingRate("Karachi", settings))
}

func TestResolveShippingRate_UnknownRegionFallsBack(t *testing.T) {
	assert.Equal(t, models.DefaultShippingRate, ResolveShippingRate("Atlantis", ratesFixture()))
}

func TestResolveShippingRate_MatchIsCaseSensitive(t *testing.T) {
	assert.Equal(t, models.DefaultShippingRate, ResolveShippingRate("lahore", ratesFixture()))
}

func TestResolveShippingRate_NilSettingsFallsBack(t *testing.T) {
	assert.Equal(t, models.DefaultShippingRate, ResolveShippingRate("Lahore", nil))
}

func TestResolveShippingRate_Deterministic(t *testing.T) {
	settings := ratesFixture()
	first := ResolveShippingRate("Karachi", settings)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ResolveShippingRate("Karachi", settings))
	}
}
