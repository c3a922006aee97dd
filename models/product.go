package models

// Product is the distilled result of an external product database lookup.
// The client only ever uses the first product of a search response.
type Product struct {
	// Name is the product's display name.
	Name string `json:"product_name"`

	// EnergyKcal100g is the energy content per 100 g in kilocalories.
	// Defaults to 0 when the external record carries no energy figure.
	EnergyKcal100g float64 `json:"energy_kcal_100g"`
}
