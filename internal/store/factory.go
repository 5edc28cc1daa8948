package store

import (
	"github.com/ignatzorin/proposal-studio/internal/models"
)

// defaultCardData возвращает полностью заполненную дефолтную полезную
// нагрузку для каждого типа карточки. Списочные варианты получают одну
// пустую запись, pricing — одну секцию без позиций, а infographic/faq/
// beforeafter — читаемый заголовок-заглушку.
//
// Перечень типов закрыт, поэтому default недостижим для корректных
// вызывающих; nil возвращается только чтобы удовлетворить компилятор.
func defaultCardData(t models.CardType) models.CardData {
	switch t {
	case models.CardTypeText:
		return models.TextSectionData{Title: "New Section", Content: ""}
	case models.CardTypeTimeline:
		return models.TimelineData{
			{Phase: "", Duration: "", Tasks: ""},
		}
	case models.CardTypePricing:
		return models.PricingData{
			{ID: newCardID(), Title: "New Section", Items: []models.PriceItem{}},
		}
	case models.CardTypeImage:
		return models.ImageCardData{URL: "", Caption: "", Alt: ""}
	case models.CardTypeVideo:
		return models.VideoCardData{URL: "", Caption: "", Type: models.VideoTypeYouTube}
	case models.CardTypeTeam:
		return models.TeamData{
			{Name: "", Role: "", Bio: "", Image: ""},
		}
	case models.CardTypeImplementation:
		return models.ImplementationData{
			{Title: "", Description: "", Duration: ""},
		}
	case models.CardTypeRisk:
		return models.RiskData{
			{Risk: "", Mitigation: "", Impact: models.ImpactMedium},
		}
	case models.CardTypeSupport:
		return models.SupportData{
			{Title: "", Description: "", Duration: "", Cost: ""},
		}
	case models.CardTypeInfographic:
		return models.InfographicData{Title: "Key Benefits", Items: []models.InfographicItem{}}
	case models.CardTypeBeforeAfter:
		return models.BeforeAfterData{
			Title:             "Transform Your Business",
			BeforeTitle:       "Before",
			BeforeDescription: "",
			AfterTitle:        "After",
			AfterDescription:  "",
		}
	case models.CardTypeFAQ:
		return models.FAQData{Title: "Frequently Asked Questions", Items: []models.FAQItem{}}
	}
	return nil
}

// DefaultPriceItem возвращает дефолтную строку сметы для новой позиции.
func DefaultPriceItem() models.PriceItem {
	return models.PriceItem{
		Description: "",
		Quantity:    1,
		Rate:        0,
		Duration:    "1 Day",
		Discount:    0,
		Notes:       []string{},
	}
}
