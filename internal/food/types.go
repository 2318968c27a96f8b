package food

import (
	"encoding/json"
	"time"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
)

// kJPerKcal converts kilojoule-only energy figures to kilocalories.
const kJPerKcal = 4.184

// Product is one food-database candidate, normalized to per-100g values.
type Product struct {
	Barcode   string
	Name      string
	Brand     string
	Per100    model.Per100
	FetchedAt time.Time
}

// productResponse is the by-barcode endpoint payload.
type productResponse struct {
	Status  int        `json:"status"`
	Product rawProduct `json:"product"`
}

// searchResponse is the free-text search endpoint payload.
type searchResponse struct {
	Count    int          `json:"count"`
	Products []rawProduct `json:"products"`
}

// rawProduct mirrors the wire format before normalization.
type rawProduct struct {
	Code       string     `json:"code"`
	Name       string     `json:"product_name"`
	Brands     string     `json:"brands"`
	Nutriments nutriments `json:"nutriments"`
}

// nutriments carries the per-100g figures. Energy comes in three
// flavors: direct kcal, kJ, or nothing at all; numbers occasionally
// arrive as strings, hence json.Number.
type nutriments struct {
	Proteins100g json.Number `json:"proteins_100g"`
	Carbs100g    json.Number `json:"carbohydrates_100g"`
	Fat100g      json.Number `json:"fat_100g"`
	Kcal100g     json.Number `json:"energy-kcal_100g"`
	KJ100g       json.Number `json:"energy_100g"`
}

// normalize converts a raw product into a Product with a usable per-100g
// basis. Products with kJ-only energy get it converted; products with no
// energy figure keep Kcal zero so the caller derives it from macros.
func (r rawProduct) normalize(now time.Time) Product {
	p := Product{
		Barcode:   r.Code,
		Name:      r.Name,
		Brand:     r.Brands,
		FetchedAt: now,
	}
	p.Per100.Protein = num(r.Nutriments.Proteins100g)
	p.Per100.Carb = num(r.Nutriments.Carbs100g)
	p.Per100.Fat = num(r.Nutriments.Fat100g)

	if kcal := num(r.Nutriments.Kcal100g); kcal > 0 {
		p.Per100.Kcal = kcal
	} else if kj := num(r.Nutriments.KJ100g); kj > 0 {
		p.Per100.Kcal = kj / kJPerKcal
	}
	return p
}

func num(n json.Number) float64 {
	v, err := n.Float64()
	if err != nil || v < 0 {
		return 0
	}
	return v
}
