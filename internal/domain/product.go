package domain

// PriceMode controls how a variation contributes to the resolved price.
type PriceMode string

const (
	PriceModeAdditive    PriceMode = "additive"
	PriceModeCombination PriceMode = "combination"
)

type VariationOption struct {
	Label        string `json:"label"`
	PriceCents   *int64 `json:"priceCents,omitempty"`
	IsFixedPrice bool   `json:"isFixedPrice,omitempty"`
}

type Variation struct {
	Type      string            `json:"type"`
	Required  bool              `json:"required"`
	PriceMode PriceMode         `json:"priceMode"`
	Options   []VariationOption `json:"options"`
}

// PriceCombination prices one full set of combination-mode selections.
type PriceCombination struct {
	Selections map[string]string `json:"selections"`
	PriceCents int64             `json:"priceCents"`
}

type Product struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Description       string             `json:"description,omitempty"`
	BasePriceCents    int64              `json:"basePriceCents"`
	IsPromo           bool               `json:"isPromo"`
	PromoPriceCents   *int64             `json:"promoPriceCents,omitempty"`
	Stock             *int               `json:"stock,omitempty"`
	CategoryID        string             `json:"categoryId,omitempty"`
	Variations        []Variation        `json:"variations,omitempty"`
	PriceCombinations []PriceCombination `json:"priceCombinations,omitempty"`
	MainImage         string             `json:"mainImage,omitempty"`
	Gallery           []string           `json:"gallery,omitempty"`
}

const placeholderImage = "/img/placeholder.png"

// Thumbnail returns the canonical display image: main image first, then
// the first gallery entry, then a placeholder.
func (p Product) Thumbnail() string {
	if p.MainImage != "" {
		return p.MainImage
	}
	if len(p.Gallery) > 0 && p.Gallery[0] != "" {
		return p.Gallery[0]
	}
	return placeholderImage
}
