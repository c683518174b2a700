package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopModel mirrors the 'shops' table. The unique user_id enforces one shop
// per owning account.
type ShopModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:varchar(60);not null"`
	URL             string    `gorm:"type:varchar(200)"`
	AcceptingOrders bool      `gorm:"not null;default:true"`
	UserID          uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Categories []CategoryModel `gorm:"many2many:shop_categories"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// CategoryModel mirrors the 'categories' table. IDs come from partner feeds,
// so there is no autoincrement here.
type CategoryModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:varchar(70);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ShopCategoryModel is the shop↔category join row, addressed explicitly so
// associations can be set-added with ON CONFLICT DO NOTHING.
type ShopCategoryModel struct {
	ShopID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID int64     `gorm:"primaryKey;autoIncrement:false"`
}

// TableName explicitly sets the table name for GORM.
func (ShopCategoryModel) TableName() string {
	return "shop_categories"
}

// ProductModel mirrors the 'products' table. Like categories, product ids are
// partner-assigned.
type ProductModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement:false"`
	Name       string `gorm:"type:varchar(100);not null"`
	CategoryID int64  `gorm:"not null;index"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ListingModel mirrors the 'listings' table (one shop's offer of one
// product). The composite unique index is the ingestion upsert key.
type ListingModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ExternalID  int64           `gorm:"not null;uniqueIndex:idx_listings_shop_external"`
	ProductID   int64           `gorm:"not null;index"`
	ShopID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_listings_shop_external"`
	Model       string          `gorm:"type:varchar(90)"`
	Description string          `gorm:"type:text"`
	Quantity    int             `gorm:"not null;default:0"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PriceRRC    decimal.Decimal `gorm:"type:numeric(12,2);not null;column:price_rrc"`

	Product    *ProductModel           `gorm:"foreignKey:ProductID"`
	Shop       *ShopModel              `gorm:"foreignKey:ShopID"`
	Parameters []ListingParameterModel `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

// ParameterModel mirrors the 'parameters' dictionary table.
type ParameterModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(60);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ParameterModel) TableName() string {
	return "parameters"
}

// ListingParameterModel mirrors the 'listing_parameters' table. The composite
// unique index guarantees at most one value per (listing, parameter).
type ListingParameterModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListingID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_listing_parameters_pair"`
	ParameterID int64     `gorm:"not null;uniqueIndex:idx_listing_parameters_pair"`
	Value       string    `gorm:"type:varchar(255);not null"`

	Parameter *ParameterModel `gorm:"foreignKey:ParameterID"`
}

// TableName explicitly sets the table name for GORM.
func (ListingParameterModel) TableName() string {
	return "listing_parameters"
}
