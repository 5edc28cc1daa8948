package service

import (
	"github.com/ignatzorin/proposal-studio/internal/models"
)

// PricingService считает суммы по смете. Все методы — чистые функции от
// своих аргументов: без округления в середине вычислений, округление
// выполняется только при форматировании для показа.
//
// Отрицательные количества, ставки и скидки здесь не отклоняются и
// распространяются арифметически; проверкой ввода занимается слой
// валидации (см. validation.ValidatePriceItem).
type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

// ItemSubtotal возвращает сумму строки до скидки: quantity × rate.
func (s *PricingService) ItemSubtotal(item models.PriceItem) float64 {
	return float64(item.Quantity) * item.Rate
}

// ItemDiscount возвращает размер скидки по строке: процент от суммы до
// скидки, без компаундинга.
func (s *PricingService) ItemDiscount(item models.PriceItem) float64 {
	return s.ItemSubtotal(item) * item.Discount / 100
}

// ItemTotal возвращает итог строки: quantity × rate × (1 − discount/100).
func (s *PricingService) ItemTotal(item models.PriceItem) float64 {
	return s.ItemSubtotal(item) - s.ItemDiscount(item)
}

// SectionTotal суммирует итоги строк секции в порядке списка.
func (s *PricingService) SectionTotal(section models.PricingSection) float64 {
	var total float64
	for _, item := range section.Items {
		total += s.ItemTotal(item)
	}
	return total
}

// GrandTotal суммирует итоги всех секций всех карточек pricing документа:
// сначала в порядке карточек, внутри карточки — в порядке секций.
// Документ без карточек pricing даёт 0.
func (s *PricingService) GrandTotal(doc models.ProposalDocument) float64 {
	var total float64
	for _, pricing := range doc.PricingCards() {
		for _, section := range pricing {
			total += s.SectionTotal(section)
		}
	}
	return total
}

// Subtotal суммирует строки всех карточек pricing до скидок.
func (s *PricingService) Subtotal(doc models.ProposalDocument) float64 {
	var total float64
	for _, pricing := range doc.PricingCards() {
		for _, section := range pricing {
			for _, item := range section.Items {
				total += s.ItemSubtotal(item)
			}
		}
	}
	return total
}

// TotalDiscount возвращает совокупный размер скидок по документу
// («Total Savings»). Инвариант: TotalDiscount + GrandTotal == Subtotal.
func (s *PricingService) TotalDiscount(doc models.ProposalDocument) float64 {
	var total float64
	for _, pricing := range doc.PricingCards() {
		for _, section := range pricing {
			for _, item := range section.Items {
				total += s.ItemDiscount(item)
			}
		}
	}
	return total
}
