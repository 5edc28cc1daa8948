package store

import (
	"github.com/ignatzorin/proposal-studio/internal/models"
)

// Редактирование сметы повторяет семантику карточного CRUD: любой промах
// (неизвестная карточка, чужой тип, неизвестная секция, индекс вне границ)
// молча игнорируется.

// AddPricingSection добавляет пустую секцию в конец карточки pricing.
func (s *CardStore) AddPricingSection(cardID string) {
	s.mutatePricing(cardID, func(data models.PricingData) models.PricingData {
		return append(data, models.PricingSection{
			ID:    newCardID(),
			Title: "New Section",
			Items: []models.PriceItem{},
		})
	})
}

// RemovePricingSection удаляет секцию по id, сохраняя порядок остальных.
func (s *CardStore) RemovePricingSection(cardID, sectionID string) {
	s.mutatePricing(cardID, func(data models.PricingData) models.PricingData {
		result := data[:0]
		for _, section := range data {
			if section.ID != sectionID {
				result = append(result, section)
			}
		}
		return result
	})
}

// RenamePricingSection меняет заголовок секции.
func (s *CardStore) RenamePricingSection(cardID, sectionID, title string) {
	s.mutateSection(cardID, sectionID, func(section *models.PricingSection) {
		section.Title = title
	})
}

// AddPriceItem добавляет дефолтную строку сметы в конец секции.
func (s *CardStore) AddPriceItem(cardID, sectionID string) {
	s.mutateSection(cardID, sectionID, func(section *models.PricingSection) {
		section.Items = append(section.Items, DefaultPriceItem())
	})
}

// UpdatePriceItem заменяет строку сметы по индексу.
func (s *CardStore) UpdatePriceItem(cardID, sectionID string, index int, item models.PriceItem) {
	s.mutateSection(cardID, sectionID, func(section *models.PricingSection) {
		if index >= 0 && index < len(section.Items) {
			section.Items[index] = item
		}
	})
}

// RemovePriceItem удаляет строку сметы по индексу.
func (s *CardStore) RemovePriceItem(cardID, sectionID string, index int) {
	s.mutateSection(cardID, sectionID, func(section *models.PricingSection) {
		if index >= 0 && index < len(section.Items) {
			section.Items = append(section.Items[:index], section.Items[index+1:]...)
		}
	})
}

// AddItemNote добавляет пустое примечание к строке сметы.
func (s *CardStore) AddItemNote(cardID, sectionID string, itemIndex int) {
	s.mutateSection(cardID, sectionID, func(section *models.PricingSection) {
		if itemIndex >= 0 && itemIndex < len(section.Items) {
			section.Items[itemIndex].Notes = append(section.Items[itemIndex].Notes, "")
		}
	})
}

// UpdateItemNote заменяет текст примечания по индексу.
func (s *CardStore) UpdateItemNote(cardID, sectionID string, itemIndex, noteIndex int, value string) {
	s.mutateSection(cardID, sectionID, func(section *models.PricingSection) {
		if itemIndex < 0 || itemIndex >= len(section.Items) {
			return
		}
		notes := section.Items[itemIndex].Notes
		if noteIndex >= 0 && noteIndex < len(notes) {
			notes[noteIndex] = value
		}
	})
}

// RemoveItemNote удаляет примечание по индексу.
func (s *CardStore) RemoveItemNote(cardID, sectionID string, itemIndex, noteIndex int) {
	s.mutateSection(cardID, sectionID, func(section *models.PricingSection) {
		if itemIndex < 0 || itemIndex >= len(section.Items) {
			return
		}
		notes := section.Items[itemIndex].Notes
		if noteIndex >= 0 && noteIndex < len(notes) {
			section.Items[itemIndex].Notes = append(notes[:noteIndex], notes[noteIndex+1:]...)
		}
	})
}

// mutatePricing применяет fn к полезной нагрузке карточки pricing с
// указанным id и записывает результат обратно.
func (s *CardStore) mutatePricing(cardID string, fn func(models.PricingData) models.PricingData) {
	for i := range s.cards {
		if s.cards[i].ID != cardID {
			continue
		}
		data, ok := s.cards[i].Data.(models.PricingData)
		if !ok {
			return
		}
		s.cards[i].Data = fn(data)
		return
	}
}

// mutateSection применяет fn к секции с указанным id внутри карточки pricing.
func (s *CardStore) mutateSection(cardID, sectionID string, fn func(*models.PricingSection)) {
	s.mutatePricing(cardID, func(data models.PricingData) models.PricingData {
		for i := range data {
			if data[i].ID == sectionID {
				fn(&data[i])
				break
			}
		}
		return data
	})
}
