package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ignatzorin/proposal-studio/internal/models"
)

// Константы валидации
const (
	MinTitleLength       = 1
	MaxTitleLength       = 200
	MaxClientNameLength  = 200
	MaxDescriptionLength = 5000
	MaxTermsLength       = 20000
	MaxDiscountPercent   = 100.0
	MaxRate              = 100000000.0 // 100 миллионов
	MaxQuantity          = 1000000
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s()\-]{7,20}$`)
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email обязателен")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("некорректный формат email")
	}
	return nil
}

// ValidatePhone проверяет формат телефона.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("телефон обязателен")
	}
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("некорректный формат телефона")
	}
	return nil
}

// ValidateISODate проверяет дату в формате YYYY-MM-DD.
func ValidateISODate(fieldName, value string) error {
	if value == "" {
		return fmt.Errorf("%s обязательна", fieldName)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%s должна быть в формате YYYY-MM-DD", fieldName)
	}
	return nil
}

// ValidateMetadata проверяет метаданные предложения перед отправкой.
// Ядро никогда не отклоняет данные само — валидация носит рекомендательный
// характер и вызывается слоем ввода.
func ValidateMetadata(md models.ProposalMetadata) error {
	if err := ValidateLength("заголовок", md.Title, MinTitleLength, MaxTitleLength); err != nil {
		return err
	}
	if err := ValidateLength("имя клиента", md.Client, 1, MaxClientNameLength); err != nil {
		return err
	}
	if err := ValidateLength("описание", md.Description, 0, MaxDescriptionLength); err != nil {
		return err
	}
	if err := ValidateEmail(md.ContactEmail); err != nil {
		return err
	}
	if err := ValidatePhone(md.ContactPhone); err != nil {
		return err
	}
	if err := ValidateISODate("дата начала", md.EventStartDate); err != nil {
		return err
	}
	if err := ValidateISODate("дата окончания", md.EventEndDate); err != nil {
		return err
	}
	if err := ValidateLength("условия", md.TermsAndConditions, 0, MaxTermsLength); err != nil {
		return err
	}
	return nil
}

// IsSendable сообщает, готово ли предложение к отправке: обязательны
// непустые условия.
func IsSendable(md models.ProposalMetadata) bool {
	return md.HasTermsAndConditions()
}

// ValidatePriceItem проверяет числовые поля строки сметы.
func ValidatePriceItem(item models.PriceItem) error {
	if item.Quantity < 0 {
		return fmt.Errorf("количество не может быть отрицательным")
	}
	if item.Quantity > MaxQuantity {
		return fmt.Errorf("количество не может превышать %d", MaxQuantity)
	}
	if item.Rate < 0 {
		return fmt.Errorf("ставка не может быть отрицательной")
	}
	if item.Rate > MaxRate {
		return fmt.Errorf("ставка не может превышать %.0f", MaxRate)
	}
	if item.Discount < 0 || item.Discount > MaxDiscountPercent {
		return fmt.Errorf("скидка должна быть в диапазоне от 0 до %.0f процентов", MaxDiscountPercent)
	}
	return nil
}
