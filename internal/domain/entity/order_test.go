package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_Total(t *testing.T) {
	order := &Order{
		ID:     uuid.New(),
		Status: StatusNew,
		Items: []OrderItem{
			{Quantity: 2, Listing: &Listing{Price: decimal.NewFromInt(110000)}},
			{Quantity: 1, Listing: &Listing{Price: decimal.RequireFromString("499.90")}},
		},
	}

	assert.Equal(t, "220499.90", order.Total().StringFixed(2))
}

func TestOrder_Total_Empty(t *testing.T) {
	order := &Order{ID: uuid.New(), Status: StatusBasket}

	assert.True(t, order.Total().IsZero())
}

func TestOrder_Total_SkipsUnresolvedListings(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Quantity: 3, Listing: nil},
			{Quantity: 2, Listing: &Listing{Price: decimal.NewFromInt(500)}},
		},
	}

	assert.Equal(t, "1000", order.Total().String())
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, status := range []OrderStatus{
		StatusBasket, StatusNew, StatusConfirmed, StatusAssembled,
		StatusSent, StatusDelivered, StatusCanceled,
	} {
		assert.True(t, status.IsValid(), status.String())
	}

	assert.False(t, OrderStatus("shipped").IsValid())
}
