// Package pricing resolves the unit price of a product for a given set
// of variation selections. Resolution is pure: no I/O, no mutation.
package pricing

import "loja-storefront/internal/domain"

// Resolve computes the unit price in cents for a product with the given
// selections (variation type -> chosen option label).
//
// The starting base is the promo price when the promo flag is set and a
// promo price exists, otherwise the base price. A matching combination
// row, if the product declares combination-mode variations, replaces
// that base. Selected options then contribute in declaration order:
// fixed-price options replace the running base (last one wins), priced
// options add to it. Labels that match no option contribute nothing.
func Resolve(product domain.Product, selections map[string]string) int64 {
	base := product.BasePriceCents
	if product.IsPromo && product.PromoPriceCents != nil {
		base = *product.PromoPriceCents
	}

	if combo, ok := matchCombination(product, selections); ok {
		base = combo
	}

	var additive int64
	for _, variation := range product.Variations {
		label, selected := selections[variation.Type]
		if !selected {
			continue
		}
		option, found := findOption(variation.Options, label)
		if !found {
			continue
		}
		switch {
		case option.IsFixedPrice && option.PriceCents != nil:
			base = *option.PriceCents
			additive = 0
		case variation.PriceMode == domain.PriceModeCombination:
			// Priced by the combination table, not per option.
		case option.PriceCents != nil:
			additive += *option.PriceCents
		}
	}

	total := base + additive
	if total < 0 {
		return 0
	}
	return total
}

// matchCombination looks up the full selection set of the product's
// combination-mode variations in its price table. Every combination-mode
// variation must have a selection and every row entry must match.
func matchCombination(product domain.Product, selections map[string]string) (int64, bool) {
	if len(product.PriceCombinations) == 0 {
		return 0, false
	}
	comboTypes := make([]string, 0, len(product.Variations))
	for _, v := range product.Variations {
		if v.PriceMode == domain.PriceModeCombination {
			comboTypes = append(comboTypes, v.Type)
		}
	}
	if len(comboTypes) == 0 {
		return 0, false
	}
	for _, t := range comboTypes {
		if _, ok := selections[t]; !ok {
			return 0, false
		}
	}
	for _, row := range product.PriceCombinations {
		if len(row.Selections) != len(comboTypes) {
			continue
		}
		matched := true
		for t, label := range row.Selections {
			if selections[t] != label {
				matched = false
				break
			}
		}
		if matched {
			return row.PriceCents, true
		}
	}
	return 0, false
}

func findOption(options []domain.VariationOption, label string) (domain.VariationOption, bool) {
	for _, option := range options {
		if option.Label == label {
			return option, true
		}
	}
	return domain.VariationOption{}, false
}
