package models

import "strings"

// ProposalMetadata — скалярные поля предложения. Заполняется целиком при
// старте сессии редактирования и заменяется только через CardStore.SetMetadata.
type ProposalMetadata struct {
	Title              string `json:"title"`
	Client             string `json:"client"`
	ClientAddress      string `json:"clientAddress"`
	Description        string `json:"description"`
	JobNumber          string `json:"jobNumber"`
	PreparedBy         string `json:"preparedBy"`
	Version            string `json:"version"`
	EventLocation      string `json:"eventLocation"`
	EventAddress       string `json:"eventAddress"`
	EventStartDate     string `json:"eventStartDate"`
	EventEndDate       string `json:"eventEndDate"`
	ContactName        string `json:"contactName"`
	ContactPhone       string `json:"contactPhone"`
	ContactEmail       string `json:"contactEmail"`
	TermsAndConditions string `json:"termsAndConditions"`
}

// HasTermsAndConditions сообщает, заполнены ли условия. Непустые условия —
// обязательное требование для отправки предложения клиенту.
func (m ProposalMetadata) HasTermsAndConditions() bool {
	return strings.TrimSpace(m.TermsAndConditions) != ""
}

// ProposalDocument — агрегат метаданных и упорядоченного списка карточек.
// Порядок карточек совпадает с порядком отображения сверху вниз.
type ProposalDocument struct {
	Metadata ProposalMetadata `json:"metadata"`
	Cards    []Card           `json:"cards"`
}

// PricingCards возвращает полезные нагрузки всех карточек pricing в порядке
// документа.
func (d ProposalDocument) PricingCards() []PricingData {
	var result []PricingData
	for _, card := range d.Cards {
		if data, ok := card.Data.(PricingData); ok && card.Type == CardTypePricing {
			result = append(result, data)
		}
	}
	return result
}

// TimelineCards возвращает полезные нагрузки всех карточек timeline в порядке
// документа.
func (d ProposalDocument) TimelineCards() []TimelineData {
	var result []TimelineData
	for _, card := range d.Cards {
		if data, ok := card.Data.(TimelineData); ok && card.Type == CardTypeTimeline {
			result = append(result, data)
		}
	}
	return result
}
