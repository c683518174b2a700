package handler

import (
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"
)

// View models decouple JSON shapes from domain entities, so password hashes
// and storage plumbing never leak into responses.

type userView struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Company    string `json:"company,omitempty"`
	Position   string `json:"position,omitempty"`
	Role       string `json:"type"`
	Active     bool   `json:"active"`
	AvatarPath string `json:"avatar,omitempty"`
}

func toUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	return &userView{
		ID:         user.ID.String(),
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Company:    user.Company,
		Position:   user.Position,
		Role:       user.Role.String(),
		Active:     user.Active,
		AvatarPath: user.AvatarPath,
	}
}

type shopView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	URL             string `json:"url,omitempty"`
	AcceptingOrders bool   `json:"accepting_orders"`
}

func toShopView(shop *entity.Shop) *shopView {
	if shop == nil {
		return nil
	}

	return &shopView{
		ID:              shop.ID.String(),
		Name:            shop.Name,
		URL:             shop.URL,
		AcceptingOrders: shop.AcceptingOrders,
	}
}

func toShopViews(shops []*entity.Shop) []*shopView {
	views := make([]*shopView, 0, len(shops))
	for _, shop := range shops {
		views = append(views, toShopView(shop))
	}

	return views
}

type categoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toCategoryView(category *entity.Category) *categoryView {
	if category == nil {
		return nil
	}

	return &categoryView{ID: category.ID, Name: category.Name}
}

func toCategoryViews(categories []*entity.Category) []*categoryView {
	views := make([]*categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, toCategoryView(category))
	}

	return views
}

type productView struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Category *categoryView `json:"category,omitempty"`
}

func toProductView(product *entity.Product) *productView {
	if product == nil {
		return nil
	}

	return &productView{
		ID:       product.ID,
		Name:     product.Name,
		Category: toCategoryView(product.Category),
	}
}

func toProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

type listingParameterView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type listingView struct {
	ID         string                 `json:"id"`
	ExternalID int64                  `json:"external_id"`
	Model      string                 `json:"model,omitempty"`
	Quantity   int                    `json:"quantity"`
	Price      string                 `json:"price"`
	PriceRRC   string                 `json:"price_rrc"`
	Product    *productView           `json:"product,omitempty"`
	Shop       *shopView              `json:"shop,omitempty"`
	Parameters []listingParameterView `json:"parameters"`
}

func toListingView(listing *entity.Listing) *listingView {
	if listing == nil {
		return nil
	}

	parameters := make([]listingParameterView, 0, len(listing.Parameters))
	for _, parameter := range listing.Parameters {
		parameters = append(parameters, listingParameterView{
			Name:  parameter.Name,
			Value: parameter.Value,
		})
	}

	return &listingView{
		ID:         listing.ID.String(),
		ExternalID: listing.ExternalID,
		Model:      listing.Model,
		Quantity:   listing.Quantity,
		Price:      listing.Price.StringFixed(2),
		PriceRRC:   listing.PriceRRC.StringFixed(2),
		Product:    toProductView(listing.Product),
		Shop:       toShopView(listing.Shop),
		Parameters: parameters,
	}
}

func toListingViews(listings []*entity.Listing) []*listingView {
	views := make([]*listingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, toListingView(listing))
	}

	return views
}

type contactView struct {
	ID        string `json:"id"`
	City      string `json:"city"`
	Street    string `json:"street"`
	House     string `json:"house,omitempty"`
	Structure string `json:"structure,omitempty"`
	Building  string `json:"building,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	Phone     string `json:"phone"`
}

func toContactView(contact *entity.Contact) *contactView {
	if contact == nil {
		return nil
	}

	return &contactView{
		ID:        contact.ID.String(),
		City:      contact.City,
		Street:    contact.Street,
		House:     contact.House,
		Structure: contact.Structure,
		Building:  contact.Building,
		Apartment: contact.Apartment,
		Phone:     contact.Phone,
	}
}

func toContactViews(contacts []*entity.Contact) []*contactView {
	views := make([]*contactView, 0, len(contacts))
	for _, contact := range contacts {
		views = append(views, toContactView(contact))
	}

	return views
}

type orderItemView struct {
	ID       string       `json:"id"`
	Quantity int          `json:"quantity"`
	Listing  *listingView `json:"listing,omitempty"`
}

type orderView struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
	Total     string          `json:"total"`
	Contact   *contactView    `json:"contact,omitempty"`
	Items     []orderItemView `json:"items"`
}

func toOrderView(order *entity.Order, total string) *orderView {
	if order == nil {
		return nil
	}

	items := make([]orderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemView{
			ID:       item.ID.String(),
			Quantity: item.Quantity,
			Listing:  toListingView(item.Listing),
		})
	}

	view := &orderView{
		ID:      order.ID.String(),
		Status:  order.Status.String(),
		Total:   total,
		Contact: toContactView(order.Contact),
		Items:   items,
	}
	if !order.CreatedAt.IsZero() {
		view.CreatedAt = order.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}

	return view
}

func toOrderViews(outputs []*usecase.OrderOutput) []*orderView {
	views := make([]*orderView, 0, len(outputs))
	for _, output := range outputs {
		views = append(views, toOrderView(output.Order, output.Total.StringFixed(2)))
	}

	return views
}
