package service

import (
	"strings"

	"github.com/ignatzorin/proposal-studio/internal/models"
)

// TimelineService оценивает общую длительность проекта по карточкам timeline.
//
// Известное ограничение, сохранённое ради совместимости поведения: единицы
// измерения не конвертируются, суммируются только ведущие числа. Этап с
// длительностью "3 days" вносит 3, а не 3/7 недели.
type TimelineService struct{}

func NewTimelineService() *TimelineService {
	return &TimelineService{}
}

// TotalWeeks суммирует ведущие числа строк duration всех этапов всех
// карточек timeline в порядке документа. Нечисловые строки вносят 0.
func (s *TimelineService) TotalWeeks(doc models.ProposalDocument) int {
	var total int
	for _, timeline := range doc.TimelineCards() {
		for _, phase := range timeline {
			total += leadingInt(phase.Duration)
		}
	}
	return total
}

// leadingInt извлекает целое число из начала первого токена строки,
// повторяя семантику parseInt: "2 weeks" → 2, "3days" → 3, "abc" → 0.
func leadingInt(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 0
	}

	token := fields[0]
	i := 0
	if i < len(token) && (token[i] == '-' || token[i] == '+') {
		i++
	}
	start := i
	for i < len(token) && token[i] >= '0' && token[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}

	value := 0
	for _, c := range token[start:i] {
		value = value*10 + int(c-'0')
	}
	if token[0] == '-' {
		return -value
	}
	return value
}
