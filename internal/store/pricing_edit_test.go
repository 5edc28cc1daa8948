package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/proposal-studio/internal/models"
	"github.com/ignatzorin/proposal-studio/internal/store"
)

func newPricingStore(t *testing.T) (*store.CardStore, string, string) {
	t.Helper()
	s := store.NewCardStore()
	card := s.AddCard(models.CardTypePricing)
	sectionID := card.Data.(models.PricingData)[0].ID
	return s, card.ID, sectionID
}

func pricingData(t *testing.T, s *store.CardStore, cardID string) models.PricingData {
	t.Helper()
	for _, card := range s.Cards() {
		if card.ID == cardID {
			data, ok := card.Data.(models.PricingData)
			require.True(t, ok)
			return data
		}
	}
	t.Fatalf("карточка %q не найдена", cardID)
	return nil
}

func TestAddPricingSection(t *testing.T) {
	s, cardID, firstSection := newPricingStore(t)

	s.AddPricingSection(cardID)

	data := pricingData(t, s, cardID)
	require.Len(t, data, 2)
	assert.Equal(t, firstSection, data[0].ID)
	assert.Equal(t, "New Section", data[1].Title)
	assert.NotEqual(t, data[0].ID, data[1].ID)
}

func TestRemovePricingSection(t *testing.T) {
	s, cardID, firstSection := newPricingStore(t)
	s.AddPricingSection(cardID)

	s.RemovePricingSection(cardID, firstSection)

	data := pricingData(t, s, cardID)
	require.Len(t, data, 1)
	assert.NotEqual(t, firstSection, data[0].ID)
}

func TestRenamePricingSection(t *testing.T) {
	s, cardID, sectionID := newPricingStore(t)

	s.RenamePricingSection(cardID, sectionID, "Design & Development")

	data := pricingData(t, s, cardID)
	assert.Equal(t, "Design & Development", data[0].Title)
}

func TestAddAndUpdatePriceItem(t *testing.T) {
	s, cardID, sectionID := newPricingStore(t)

	s.AddPriceItem(cardID, sectionID)

	data := pricingData(t, s, cardID)
	require.Len(t, data[0].Items, 1)
	assert.Equal(t, store.DefaultPriceItem(), data[0].Items[0])

	item := models.PriceItem{Description: "UI/UX Design", Quantity: 2, Rate: 100, Duration: "3 weeks", Discount: 10, Notes: []string{}}
	s.UpdatePriceItem(cardID, sectionID, 0, item)

	data = pricingData(t, s, cardID)
	assert.Equal(t, item, data[0].Items[0])
}

func TestRemovePriceItemPreservesOrder(t *testing.T) {
	s, cardID, sectionID := newPricingStore(t)
	s.AddPriceItem(cardID, sectionID)
	s.AddPriceItem(cardID, sectionID)
	s.AddPriceItem(cardID, sectionID)
	s.UpdatePriceItem(cardID, sectionID, 0, models.PriceItem{Description: "first"})
	s.UpdatePriceItem(cardID, sectionID, 1, models.PriceItem{Description: "second"})
	s.UpdatePriceItem(cardID, sectionID, 2, models.PriceItem{Description: "third"})

	s.RemovePriceItem(cardID, sectionID, 1)

	data := pricingData(t, s, cardID)
	require.Len(t, data[0].Items, 2)
	assert.Equal(t, "first", data[0].Items[0].Description)
	assert.Equal(t, "third", data[0].Items[1].Description)
}

func TestItemNotes(t *testing.T) {
	s, cardID, sectionID := newPricingStore(t)
	s.AddPriceItem(cardID, sectionID)

	s.AddItemNote(cardID, sectionID, 0)
	s.UpdateItemNote(cardID, sectionID, 0, 0, "Includes 3 rounds of revisions")
	s.AddItemNote(cardID, sectionID, 0)

	data := pricingData(t, s, cardID)
	require.Len(t, data[0].Items[0].Notes, 2)
	assert.Equal(t, "Includes 3 rounds of revisions", data[0].Items[0].Notes[0])

	s.RemoveItemNote(cardID, sectionID, 0, 1)
	data = pricingData(t, s, cardID)
	assert.Equal(t, []string{"Includes 3 rounds of revisions"}, data[0].Items[0].Notes)
}

func TestPricingEditSilentMisses(t *testing.T) {
	s, cardID, sectionID := newPricingStore(t)
	s.AddPriceItem(cardID, sectionID)
	before := append(models.PricingData{}, pricingData(t, s, cardID)...)

	// неизвестная карточка
	s.AddPricingSection("missing-card")
	// карточка не того типа
	text := s.AddCard(models.CardTypeText)
	s.AddPriceItem(text.ID, sectionID)
	// неизвестная секция
	s.AddPriceItem(cardID, "missing-section")
	// индексы вне границ
	s.UpdatePriceItem(cardID, sectionID, 5, models.PriceItem{Description: "ignored"})
	s.RemovePriceItem(cardID, sectionID, -1)
	s.UpdateItemNote(cardID, sectionID, 0, 3, "ignored")

	assert.Equal(t, before, pricingData(t, s, cardID))
	assert.Equal(t, models.TextSectionData{Title: "New Section"}, mustFindCard(t, s, text.ID).Data)
}

func mustFindCard(t *testing.T, s *store.CardStore, id string) models.Card {
	t.Helper()
	for _, card := range s.Cards() {
		if card.ID == id {
			return card
		}
	}
	t.Fatalf("карточка %q не найдена", id)
	return models.Card{}
}
