package models

// CardType определяет вариант карточки предложения.
type CardType string

const (
	CardTypeText           CardType = "text"
	CardTypeTimeline       CardType = "timeline"
	CardTypePricing        CardType = "pricing"
	CardTypeImage          CardType = "image"
	CardTypeVideo          CardType = "video"
	CardTypeTeam           CardType = "team"
	CardTypeImplementation CardType = "implementation"
	CardTypeRisk           CardType = "risk"
	CardTypeSupport        CardType = "support"
	CardTypeInfographic    CardType = "infographic"
	CardTypeBeforeAfter    CardType = "beforeafter"
	CardTypeFAQ            CardType = "faq"
)

// AllCardTypes перечисляет поддерживаемые типы карточек в порядке меню редактора.
var AllCardTypes = []CardType{
	CardTypeText,
	CardTypeTimeline,
	CardTypePricing,
	CardTypeImage,
	CardTypeVideo,
	CardTypeTeam,
	CardTypeImplementation,
	CardTypeRisk,
	CardTypeSupport,
	CardTypeInfographic,
	CardTypeBeforeAfter,
	CardTypeFAQ,
}

// IsValid проверяет, что тип карточки входит в закрытый перечень.
func (t CardType) IsValid() bool {
	switch t {
	case CardTypeText, CardTypeTimeline, CardTypePricing, CardTypeImage,
		CardTypeVideo, CardTypeTeam, CardTypeImplementation, CardTypeRisk,
		CardTypeSupport, CardTypeInfographic, CardTypeBeforeAfter, CardTypeFAQ:
		return true
	}
	return false
}

// VideoType определяет источник видео для карточки video.
type VideoType string

const (
	VideoTypeYouTube VideoType = "youtube"
	VideoTypeVimeo   VideoType = "vimeo"
	VideoTypeDirect  VideoType = "direct"
)

func (t VideoType) IsValid() bool {
	switch t {
	case VideoTypeYouTube, VideoTypeVimeo, VideoTypeDirect:
		return true
	}
	return false
}

// ImpactLevel определяет степень влияния риска.
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

func (l ImpactLevel) IsValid() bool {
	switch l {
	case ImpactLow, ImpactMedium, ImpactHigh:
		return true
	}
	return false
}

// Статусы предложений в каталоге.
const (
	ProposalStatusDraft    = "Draft"
	ProposalStatusSent     = "Sent"
	ProposalStatusApproved = "Approved"
)

// Статусы клиентов.
const (
	ClientStatusActive  = "active"
	ClientStatusPending = "pending"
)
