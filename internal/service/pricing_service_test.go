package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/proposal-studio/internal/models"
	"github.com/ignatzorin/proposal-studio/internal/service"
)

func pricingDoc(cards ...models.PricingData) models.ProposalDocument {
	doc := models.ProposalDocument{}
	for i, data := range cards {
		doc.Cards = append(doc.Cards, models.Card{
			ID:   string(rune('a' + i)),
			Type: models.CardTypePricing,
			Data: data,
		})
	}
	return doc
}

func TestItemTotal(t *testing.T) {
	pricing := service.NewPricingService()

	tests := []struct {
		name         string
		item         models.PriceItem
		wantSubtotal float64
		wantDiscount float64
		wantTotal    float64
	}{
		{
			name:         "скидка 10 процентов",
			item:         models.PriceItem{Quantity: 2, Rate: 100, Discount: 10},
			wantSubtotal: 200,
			wantDiscount: 20,
			wantTotal:    180,
		},
		{
			name:         "без скидки",
			item:         models.PriceItem{Quantity: 1, Rate: 15000},
			wantSubtotal: 15000,
			wantDiscount: 0,
			wantTotal:    15000,
		},
		{
			name:         "полная скидка",
			item:         models.PriceItem{Quantity: 3, Rate: 50, Discount: 100},
			wantSubtotal: 150,
			wantDiscount: 150,
			wantTotal:    0,
		},
		{
			name:         "нулевое количество",
			item:         models.PriceItem{Quantity: 0, Rate: 500, Discount: 25},
			wantSubtotal: 0,
			wantDiscount: 0,
			wantTotal:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantSubtotal, pricing.ItemSubtotal(tt.item), 1e-9)
			assert.InDelta(t, tt.wantDiscount, pricing.ItemDiscount(tt.item), 1e-9)
			assert.InDelta(t, tt.wantTotal, pricing.ItemTotal(tt.item), 1e-9)
		})
	}
}

func TestNegativeValuesPropagate(t *testing.T) {
	pricing := service.NewPricingService()

	// Отрицательные значения не отклоняются, а распространяются арифметически.
	item := models.PriceItem{Quantity: -2, Rate: 100, Discount: 0}
	assert.InDelta(t, -200, pricing.ItemTotal(item), 1e-9)

	item = models.PriceItem{Quantity: 1, Rate: 100, Discount: -50}
	assert.InDelta(t, 150, pricing.ItemTotal(item), 1e-9)
}

func TestSectionTotal(t *testing.T) {
	pricing := service.NewPricingService()

	section := models.PricingSection{
		ID:    "1",
		Title: "Design & Development",
		Items: []models.PriceItem{
			{Description: "UI/UX Design", Quantity: 1, Rate: 15000},
			{Description: "Frontend Development", Quantity: 1, Rate: 20000},
			{Description: "Backend Development", Quantity: 1, Rate: 15000, Discount: 10},
		},
	}

	assert.InDelta(t, 48500, pricing.SectionTotal(section), 1e-9)
}

func TestGrandTotalAcrossCards(t *testing.T) {
	pricing := service.NewPricingService()

	doc := pricingDoc(
		models.PricingData{{ID: "s1", Items: []models.PriceItem{{Quantity: 1, Rate: 1000}}}},
		models.PricingData{{ID: "s1", Items: []models.PriceItem{{Quantity: 1, Rate: 1000}}}},
	)

	assert.InDelta(t, 2000, pricing.GrandTotal(doc), 1e-9)
	assert.InDelta(t, 0, pricing.TotalDiscount(doc), 1e-9)
}

func TestGrandTotalEmptyDocument(t *testing.T) {
	pricing := service.NewPricingService()

	assert.Zero(t, pricing.GrandTotal(models.ProposalDocument{}))
	assert.Zero(t, pricing.Subtotal(models.ProposalDocument{}))
	assert.Zero(t, pricing.TotalDiscount(models.ProposalDocument{}))

	// документ без карточек pricing тоже даёт 0
	doc := models.ProposalDocument{Cards: []models.Card{
		{ID: "1", Type: models.CardTypeText, Data: models.TextSectionData{}},
	}}
	assert.Zero(t, pricing.GrandTotal(doc))
}

func TestDiscountInvariant(t *testing.T) {
	pricing := service.NewPricingService()

	doc := pricingDoc(models.PricingData{
		{
			ID: "s1",
			Items: []models.PriceItem{
				{Quantity: 2, Rate: 100, Discount: 10},
				{Quantity: 1, Rate: 333, Discount: 7},
				{Quantity: 5, Rate: 49.99, Discount: 15},
			},
		},
		{
			ID: "s2",
			Items: []models.PriceItem{
				{Quantity: 3, Rate: 1234.56, Discount: 33},
			},
		},
	})

	// TotalDiscount + GrandTotal == Subtotal
	assert.InDelta(t, pricing.Subtotal(doc), pricing.TotalDiscount(doc)+pricing.GrandTotal(doc), 1e-9)
}
