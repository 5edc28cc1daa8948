package models

import (
	"encoding/json"
	"fmt"
)

// Card — один контентный блок предложения. Конкретная форма данных
// определяется дискриминантом Type; Data всегда содержит вариант,
// соответствующий этому типу.
type Card struct {
	ID   string   `json:"id"`
	Type CardType `json:"type"`
	Data CardData `json:"data"`
}

// CardData — закрытое объединение полезных нагрузок карточек.
// Реализации перечислены в этом файле; внешние типы добавить нельзя.
type CardData interface {
	isCardData()
}

// TextSectionData — свободный текстовый раздел.
type TextSectionData struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TimelinePhase — один этап плана работ.
type TimelinePhase struct {
	Phase    string `json:"phase"`
	Duration string `json:"duration"`
	Tasks    string `json:"tasks"`
}

// TimelineData — упорядоченный список этапов.
type TimelineData []TimelinePhase

// PriceItem — одна строка сметы. Quantity и Rate дают сумму до скидки,
// Discount применяется как процент от этой суммы и не компаундится.
type PriceItem struct {
	Description string   `json:"description"`
	Quantity    int      `json:"quantity"`
	Rate        float64  `json:"rate"`
	Duration    string   `json:"duration"`
	Discount    float64  `json:"discount"`
	Notes       []string `json:"notes"`
}

// PricingSection — именованная группа строк сметы. ID уникален в пределах
// одной карточки pricing, но не глобально.
type PricingSection struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Items []PriceItem `json:"items"`
}

// PricingData — упорядоченный список секций сметы.
type PricingData []PricingSection

// ImageCardData — изображение с подписью.
type ImageCardData struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Alt     string `json:"alt"`
}

// VideoCardData — видео с указанием источника.
type VideoCardData struct {
	URL     string    `json:"url"`
	Caption string    `json:"caption"`
	Type    VideoType `json:"type"`
}

// TeamMember — участник команды проекта.
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

// TeamData — упорядоченный список участников.
type TeamData []TeamMember

// ImplementationStep — шаг плана внедрения.
type ImplementationStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// ImplementationData — упорядоченный список шагов внедрения.
type ImplementationData []ImplementationStep

// Risk — риск проекта и меры по его снижению.
type Risk struct {
	Risk       string      `json:"risk"`
	Mitigation string      `json:"mitigation"`
	Impact     ImpactLevel `json:"impact"`
}

// RiskData — упорядоченный список рисков.
type RiskData []Risk

// SupportItem — позиция поддержки и сопровождения.
type SupportItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Cost        string `json:"cost"`
}

// SupportData — упорядоченный список позиций поддержки.
type SupportData []SupportItem

// InfographicItem — один показатель инфографики.
type InfographicItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// InfographicData — заголовок и набор показателей.
type InfographicData struct {
	Title string            `json:"title"`
	Items []InfographicItem `json:"items"`
}

// BeforeAfterData — сравнение «до и после».
type BeforeAfterData struct {
	Title             string `json:"title"`
	BeforeTitle       string `json:"beforeTitle"`
	BeforeDescription string `json:"beforeDescription"`
	AfterTitle        string `json:"afterTitle"`
	AfterDescription  string `json:"afterDescription"`
}

// FAQItem — пара вопрос-ответ.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQData — заголовок и список вопросов.
type FAQData struct {
	Title string    `json:"title"`
	Items []FAQItem `json:"items"`
}

func (TextSectionData) isCardData()    {}
func (TimelineData) isCardData()       {}
func (PricingData) isCardData()        {}
func (ImageCardData) isCardData()      {}
func (VideoCardData) isCardData()      {}
func (TeamData) isCardData()           {}
func (ImplementationData) isCardData() {}
func (RiskData) isCardData()           {}
func (SupportData) isCardData()        {}
func (InfographicData) isCardData()    {}
func (BeforeAfterData) isCardData()    {}
func (FAQData) isCardData()            {}

// UnmarshalJSON восстанавливает карточку из {id, type, data}, выбирая
// конкретный тип полезной нагрузки по дискриминанту.
func (c *Card) UnmarshalJSON(raw []byte) error {
	var shell struct {
		ID   string          `json:"id"`
		Type CardType        `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &shell); err != nil {
		return err
	}

	data, err := unmarshalCardData(shell.Type, shell.Data)
	if err != nil {
		return err
	}

	c.ID = shell.ID
	c.Type = shell.Type
	c.Data = data
	return nil
}

func unmarshalCardData(t CardType, raw json.RawMessage) (CardData, error) {
	switch t {
	case CardTypeText:
		var d TextSectionData
		err := json.Unmarshal(raw, &d)
		return d, err
	case CardTypeTimeline:
		var d TimelineData
		err := json.Unmarshal(raw, &d)
		return d, err
	case CardTypePricing:
		var d PricingData
		err := json.Unmarshal(raw, &d)
		return d, err
	case CardTypeImage:
		var d ImageCardData
		err := json.Unmarshal(raw, &d)
		return d, err
	case CardTypeVideo:
		var d VideoCardData
		err := json.Unmarshal(raw, &d)
		return d, err
	case CardTypeTeam:
		var d TeamData
		err := json.Unmarshal(raw, &d)
		return d, err
	case CardTypeImplementation:
		var d ImplementationData
		err := json.Unmarshal(raw, &d)
		return d, err
	case CardTypeRisk:
		var d RiskData
		err := json.Unmarshal(raw, &d)
		return d, err
	case CardTypeSupport:
		var d SupportData
		err := json.Unmarshal(raw, &d)
		return d, err
	case CardTypeInfographic:
		var d InfographicData
		err := json.Unmarshal(raw, &d)
		return d, err
	case CardTypeBeforeAfter:
		var d BeforeAfterData
		err := json.Unmarshal(raw, &d)
		return d, err
	case CardTypeFAQ:
		var d FAQData
		err := json.Unmarshal(raw, &d)
		return d, err
	}
	return nil, fmt.Errorf("models: неизвестный тип карточки %q", t)
}
