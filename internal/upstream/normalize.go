package upstream

import (
	"bytes"
	"encoding/json"
	"strings"

	"loja-storefront/internal/domain"
)

// The backend serializes ids sometimes as strings and sometimes as
// numbers. flexID accepts both and normalizes to a string.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = flexID(n.String())
	return nil
}

type wireOption struct {
	Label        string `json:"label"`
	PriceCents   *int64 `json:"priceCents"`
	IsFixedPrice bool   `json:"isFixedPrice"`
}

type wireVariation struct {
	Type      string       `json:"type"`
	Required  bool         `json:"required"`
	PriceMode string       `json:"priceMode"`
	Options   []wireOption `json:"options"`
}

type wireCombination struct {
	Selections map[string]string `json:"selections"`
	PriceCents int64             `json:"priceCents"`
}

type wireProduct struct {
	ID              flexID            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	BasePriceCents  int64             `json:"basePriceCents"`
	IsPromo         bool              `json:"isPromo"`
	PromoPriceCents *int64            `json:"promoPriceCents"`
	Stock           *int              `json:"stock"`
	CategoryID      flexID            `json:"categoryId"`
	Variations      []wireVariation   `json:"variations"`
	Combinations    []wireCombination `json:"priceCombinations"`
	MainImage       string            `json:"mainImage"`
	Gallery         []string          `json:"gallery"`
}

// toDomain normalizes one catalog payload: blank option labels and
// empty variation axes are dropped here so nothing downstream has to
// re-check shapes.
func (w wireProduct) toDomain() domain.Product {
	variations := make([]domain.Variation, 0, len(w.Variations))
	for _, wv := range w.Variations {
		if strings.TrimSpace(wv.Type) == "" {
			continue
		}
		options := make([]domain.VariationOption, 0, len(wv.Options))
		for _, wo := range wv.Options {
			if strings.TrimSpace(wo.Label) == "" {
				continue
			}
			options = append(options, domain.VariationOption{
				Label:        wo.Label,
				PriceCents:   wo.PriceCents,
				IsFixedPrice: wo.IsFixedPrice,
			})
		}
		if len(options) == 0 {
			continue
		}
		variations = append(variations, domain.Variation{
			Type:      wv.Type,
			Required:  wv.Required,
			PriceMode: normalizePriceMode(wv.PriceMode),
			Options:   options,
		})
	}

	var combos []domain.PriceCombination
	for _, wc := range w.Combinations {
		if len(wc.Selections) == 0 {
			continue
		}
		combos = append(combos, domain.PriceCombination{
			Selections: wc.Selections,
			PriceCents: wc.PriceCents,
		})
	}

	gallery := make([]string, 0, len(w.Gallery))
	for _, u := range w.Gallery {
		if strings.TrimSpace(u) == "" {
			continue
		}
		gallery = append(gallery, u)
	}

	return domain.Product{
		ID:                string(w.ID),
		Name:              w.Name,
		Description:       w.Description,
		BasePriceCents:    w.BasePriceCents,
		IsPromo:           w.IsPromo,
		PromoPriceCents:   w.PromoPriceCents,
		Stock:             w.Stock,
		CategoryID:        string(w.CategoryID),
		Variations:        variations,
		PriceCombinations: combos,
		MainImage:         w.MainImage,
		Gallery:           gallery,
	}
}

type wireCategory struct {
	ID       flexID `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"imageUrl"`
}

func (w wireCategory) toDomain() domain.Category {
	return domain.Category{
		ID:       string(w.ID),
		Name:     w.Name,
		Slug:     w.Slug,
		ImageURL: w.ImageURL,
	}
}

func normalizePriceMode(raw string) domain.PriceMode {
	if strings.EqualFold(strings.TrimSpace(raw), string(domain.PriceModeCombination)) {
		return domain.PriceModeCombination
	}
	return domain.PriceModeAdditive
}
