package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductFilter_Match(t *testing.T) {
	p := Product{
		ID:          "p1",
		Name:        "Rooftop 5kW",
		Brand:       "Tesla",
		Description: "Monocrystalline panels",
		Category:    CategoryHome,
		Price:       250000,
	}

	tests := []struct {
		name   string
		filter ProductFilter
		want   bool
	}{
		{name: "empty filter", filter: ProductFilter{}, want: true},
		{name: "category match", filter: ProductFilter{Category: CategoryHome}, want: true},
		{name: "category mismatch", filter: ProductFilter{Category: CategoryCommercial}, want: false},
		{name: "brand ignores case", filter: ProductFilter{Brand: "tesla"}, want: true},
		{name: "below min price", filter: ProductFilter{MinPrice: 300000}, want: false},
		{name: "above max price", filter: ProductFilter{MaxPrice: 200000}, want: false},
		{name: "inside price range", filter: ProductFilter{MinPrice: 200000, MaxPrice: 300000}, want: true},
		{name: "search in description", filter: ProductFilter{Search: "MONO"}, want: true},
		{name: "search miss", filter: ProductFilter{Search: "wind"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(p))
		})
	}
}

func TestTicketFilter_Apply(t *testing.T) {
	tickets := []Ticket{
		{ID: "t1", Status: "open", Priority: "high"},
		{ID: "t2", Status: "closed", Priority: "high"},
		{ID: "t3", Status: "open", Priority: "low"},
	}

	ids := func(ts []Ticket) []string {
		out := []string{}
		for _, t := range ts {
			out = append(out, t.ID)
		}

		return out
	}

	assert.Equal(t, []string{"t1", "t2", "t3"}, ids(TicketFilter{}.Apply(tickets)))
	assert.Equal(t, []string{"t1", "t3"}, ids(TicketFilter{Status: "open"}.Apply(tickets)))
	assert.Equal(t, []string{"t1"}, ids(TicketFilter{Status: "open", Priority: "high"}.Apply(tickets)))
	assert.Empty(t, TicketFilter{Status: "resolved"}.Apply(tickets))
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"solar", "tips"}, ParseTags(" solar, ,tips ,"))
	assert.Empty(t, ParseTags(""))
}

func TestCartItem_Subtotal(t *testing.T) {
	item := CartItem{Product: Product{ID: "p1", Price: 250}, Quantity: 3}

	assert.Equal(t, 750.0, item.Subtotal())
}
