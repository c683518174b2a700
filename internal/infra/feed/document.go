// Package feed parses and validates partner catalog feed documents.
// A feed is the YAML payload a shop uploads (or points to by URL): the shop
// name, its categories, and the goods with per-listing price/stock and
// free-form parameters.
package feed

// Document is the typed shape of a partner feed.
type Document struct {
	Shop       string     `yaml:"shop"`
	Categories []Category `yaml:"categories"`
	Goods      []Good     `yaml:"goods"`
}

// Category is a feed category entry. The partner assigns the id; it is the
// category's identity across uploads and across shops.
type Category struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// Good is one catalog entry: a product plus this shop's listing of it.
type Good struct {
	ID       int64  `yaml:"id"` // Doubles as the listing's external_id.
	Name     string `yaml:"name"`
	Category int64  `yaml:"category"`
	Model    string `yaml:"model"`
	Quantity int    `yaml:"quantity"`
	Price    int64  `yaml:"price"`
	PriceRRC int64  `yaml:"price_rrc"`

	// Parameters maps attribute name to value. Values may be scalars of any
	// YAML type; they are coerced to strings during validation.
	Parameters map[string]any `yaml:"parameters"`
}
