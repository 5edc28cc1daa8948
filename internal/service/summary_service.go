package service

import (
	"github.com/ignatzorin/proposal-studio/internal/models"
)

// DocumentSummary — производная сводка документа для дашборда и превью.
type DocumentSummary struct {
	CardCounts   map[models.CardType]int `json:"cardCounts"`
	Subtotal     float64                 `json:"subtotal"`
	GrandTotal   float64                 `json:"grandTotal"`
	TotalSavings float64                 `json:"totalSavings"`
	TotalWeeks   int                     `json:"totalWeeks"`
	Sendable     bool                    `json:"sendable"`
}

// SummaryService собирает сводку по документу из производных вычислений.
type SummaryService struct {
	pricing  *PricingService
	timeline *TimelineService
}

func NewSummaryService(pricing *PricingService, timeline *TimelineService) *SummaryService {
	return &SummaryService{
		pricing:  pricing,
		timeline: timeline,
	}
}

// Summarize возвращает сводку: количество карточек по типам, суммы сметы,
// общую длительность и признак готовности к отправке.
func (s *SummaryService) Summarize(doc models.ProposalDocument) DocumentSummary {
	counts := make(map[models.CardType]int)
	for _, card := range doc.Cards {
		counts[card.Type]++
	}

	return DocumentSummary{
		CardCounts:   counts,
		Subtotal:     s.pricing.Subtotal(doc),
		GrandTotal:   s.pricing.GrandTotal(doc),
		TotalSavings: s.pricing.TotalDiscount(doc),
		TotalWeeks:   s.timeline.TotalWeeks(doc),
		Sendable:     doc.Metadata.HasTermsAndConditions(),
	}
}
