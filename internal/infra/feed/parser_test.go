package feed

import (
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFeed = `shop: Svyaznoy
categories:
  - id: 224
    name: Smartphones
  - id: 15
    name: Accessories
goods:
  - id: 4216292
    category: 224
    model: apple/iphone/xs-max
    name: Smartphone Apple iPhone XS Max 512GB (golden)
    price: 110000
    price_rrc: 116990
    quantity: 14
    parameters:
      "Screen Size (inches)": 6.5
      "Color": golden
      "Water Resistant": true
`

func TestParse_ValidDocument(t *testing.T) {
	doc, err := Parse([]byte(validFeed))

	require.NoError(t, err)
	assert.Equal(t, "Svyaznoy", doc.Shop)
	assert.Len(t, doc.Categories, 2)
	require.Len(t, doc.Goods, 1)

	good := doc.Goods[0]
	assert.Equal(t, int64(4216292), good.ID)
	assert.Equal(t, int64(224), good.Category)
	assert.Equal(t, int64(110000), good.Price)
	assert.Equal(t, int64(116990), good.PriceRRC)
	assert.Equal(t, 14, good.Quantity)
	assert.Len(t, good.Parameters, 3)
}

func TestParse_ZeroQuantityIsOutOfStock(t *testing.T) {
	feed := `shop: Svyaznoy
categories:
  - id: 224
    name: Smartphones
goods:
  - id: 1
    category: 224
    name: Sold out phone
    price: 100
    price_rrc: 120
    quantity: 0
`

	doc, err := Parse([]byte(feed))

	require.NoError(t, err)
	require.Len(t, doc.Goods, 1)
	assert.Zero(t, doc.Goods[0].Quantity)
}

func TestParse_InvalidYAML(t *testing.T) {
	doc, err := Parse([]byte("shop: [unterminated"))

	assert.Nil(t, doc)
	assert.True(t, errors.Is(err, domainerrors.ErrFeedMalformed))
}

func TestParse_RejectsWholeDocument(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "missing shop name",
			body: "categories:\n  - id: 1\n    name: Phones\n",
		},
		{
			name: "category without name",
			body: "shop: S\ncategories:\n  - id: 1\n",
		},
		{
			name: "non-positive category id",
			body: "shop: S\ncategories:\n  - id: 0\n    name: Phones\n",
		},
		{
			name: "good without price",
			body: "shop: S\ncategories:\n  - id: 1\n    name: Phones\ngoods:\n  - id: 2\n    category: 1\n    name: Phone\n    quantity: 1\n",
		},
		{
			name: "good references unknown category",
			body: "shop: S\ncategories:\n  - id: 1\n    name: Phones\ngoods:\n  - id: 2\n    category: 99\n    name: Phone\n    price: 10\n    quantity: 1\n",
		},
		{
			name: "negative quantity",
			body: "shop: S\ncategories:\n  - id: 1\n    name: Phones\ngoods:\n  - id: 2\n    category: 1\n    name: Phone\n    price: 10\n    quantity: -1\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse([]byte(tc.body))

			assert.Nil(t, doc)
			assert.True(t, errors.Is(err, domainerrors.ErrFeedMalformed))
		})
	}
}

func TestStringParameters_CoercesScalars(t *testing.T) {
	good := &Good{
		Parameters: map[string]any{
			"Color":    "golden",
			"Diagonal": 6.5,
			"Cores":    8,
			"5G":       true,
		},
	}

	params := StringParameters(good)

	assert.Equal(t, "golden", params["Color"])
	assert.Equal(t, "6.5", params["Diagonal"])
	assert.Equal(t, "8", params["Cores"])
	assert.Equal(t, "true", params["5G"])
}

func TestStringParameters_EmptyIsNil(t *testing.T) {
	assert.Nil(t, StringParameters(&Good{}))
}
