package feed

import (
	"fmt"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Parse decodes a YAML feed document and validates its shape. It rejects the
// whole document before any storage is touched, naming the offending field,
// so a half-broken feed never partially applies.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domainerrors.ErrFeedMalformed.WithDetails(err.Error()).WrapMessage("failed to decode feed yaml")
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks structural invariants of an already-decoded document.
func Validate(doc *Document) error {
	if doc.Shop == "" {
		return fieldError("shop", "shop name is required")
	}

	categories := make(map[int64]struct{}, len(doc.Categories))
	for i, category := range doc.Categories {
		if category.ID <= 0 {
			return fieldError(fmt.Sprintf("categories[%d].id", i), "category id must be positive")
		}
		if category.Name == "" {
			return fieldError(fmt.Sprintf("categories[%d].name", i), "category name is required")
		}
		categories[category.ID] = struct{}{}
	}

	for i, good := range doc.Goods {
		switch {
		case good.ID <= 0:
			return fieldError(fmt.Sprintf("goods[%d].id", i), "good id must be positive")
		case good.Name == "":
			return fieldError(fmt.Sprintf("goods[%d].name", i), "good name is required")
		case good.Quantity < 0:
			return fieldError(fmt.Sprintf("goods[%d].quantity", i), "quantity must not be negative")
		case good.Price <= 0:
			return fieldError(fmt.Sprintf("goods[%d].price", i), "price must be positive")
		case good.PriceRRC < 0:
			return fieldError(fmt.Sprintf("goods[%d].price_rrc", i), "price_rrc must not be negative")
		}

		if _, ok := categories[good.Category]; !ok {
			return fieldError(
				fmt.Sprintf("goods[%d].category", i),
				fmt.Sprintf("references unknown category %d", good.Category),
			)
		}

		for name := range good.Parameters {
			if name == "" {
				return fieldError(fmt.Sprintf("goods[%d].parameters", i), "parameter name must not be empty")
			}
		}
	}

	return nil
}

// StringParameters coerces a good's parameter values to strings. YAML scalars
// arrive as int/float/bool/string depending on the source document.
func StringParameters(good *Good) map[string]string {
	if len(good.Parameters) == 0 {
		return nil
	}

	out := make(map[string]string, len(good.Parameters))
	for name, value := range good.Parameters {
		out[name] = fmt.Sprint(value)
	}

	return out
}

func fieldError(field, reason string) error {
	return errors.Wrapf(
		domainerrors.ErrFeedMalformed.WithDetails(field),
		"invalid feed field %s: %s", field, reason,
	)
}
