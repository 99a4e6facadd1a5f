package services

import "github.com/mirkashi/Grazieoutfits/models"

// ResolveShippingRate returns the configured rate for region. The lookup is a
// case-sensitive exact match over the settings' rate table; when settings is
// nil or the region is not listed, the fixed default applies. Order placement
// and the public rate preview both go through this function so the quoted and
// charged rates can never disagree.
func ResolveShippingRate(region string, settings *models.Settings) int64 {
	if settings == nil {
		return models.DefaultShippingRate
	}
	for _, entry := range settings.ShippingRates {
		if entry.Region == region {
			return entry.Rate
		}
	}
	return models.DefaultShippingRate
}
