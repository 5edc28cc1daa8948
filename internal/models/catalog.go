package models

import "github.com/google/uuid"

// Client описывает клиента в каталоге.
type Client struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Projects int       `json:"projects"`
	Status   string    `json:"status"`
}

// ProposalSummary — строка списка предложений: кому, что и в каком статусе.
type ProposalSummary struct {
	ID     uuid.UUID `json:"id"`
	Client string    `json:"client"`
	Title  string    `json:"title"`
	Status string    `json:"status"`
	Date   string    `json:"date"`
}

// Template описывает шаблон предложения.
type Template struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Uses        int       `json:"uses"`
}
