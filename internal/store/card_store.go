// Package store владеет документом одной сессии редактирования предложения
// и предоставляет единственную поверхность его мутации.
//
// Контракт по конкурентности: один писатель, один читатель, одна горутина.
// Документ принадлежит ровно одной сессии, поэтому блокировок нет.
package store

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/proposal-studio/internal/logger"
	"github.com/ignatzorin/proposal-studio/internal/models"
)

// CardStore хранит метаданные предложения и упорядоченный список карточек.
type CardStore struct {
	metadata models.ProposalMetadata
	cards    []models.Card
}

// NewCardStore создаёт пустое хранилище. Начальное наполнение задаётся
// через SetMetadata/SetCards (см. service.SeedService).
func NewCardStore() *CardStore {
	return &CardStore{}
}

// AddCard создаёт карточку указанного типа с дефолтной полезной нагрузкой,
// присваивает ей уникальный идентификатор и добавляет в конец списка.
// Операция всегда успешна для любого поддерживаемого типа.
func (s *CardStore) AddCard(t models.CardType) models.Card {
	card := models.Card{
		ID:   newCardID(),
		Type: t,
		Data: defaultCardData(t),
	}
	s.cards = append(s.cards, card)
	return card
}

// UpdateCard заменяет полезную нагрузку карточки с указанным id, сохраняя
// её тип и позицию. Неизвестный id молча игнорируется: вызывающие не всегда
// гарантируют существование карточки, и это поведение зафиксировано.
func (s *CardStore) UpdateCard(id string, data models.CardData) {
	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards[i].Data = data
			return
		}
	}
	warnMissingCard("update_card", id)
}

// RemoveCard удаляет первую карточку с указанным id, сохраняя порядок
// остальных. Неизвестный id молча игнорируется.
func (s *CardStore) RemoveCard(id string) {
	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return
		}
	}
	warnMissingCard("remove_card", id)
}

// SetMetadata заменяет метаданные предложения целиком.
func (s *CardStore) SetMetadata(md models.ProposalMetadata) {
	s.metadata = md
}

// Metadata возвращает текущие метаданные предложения.
func (s *CardStore) Metadata() models.ProposalMetadata {
	return s.metadata
}

// SetCards заменяет список карточек целиком (используется при посеве данных).
func (s *CardStore) SetCards(cards []models.Card) {
	s.cards = cards
}

// Cards возвращает упорядоченный список карточек.
func (s *CardStore) Cards() []models.Card {
	return s.cards
}

// Document собирает снимок документа для производных вычислений.
func (s *CardStore) Document() models.ProposalDocument {
	return models.ProposalDocument{
		Metadata: s.metadata,
		Cards:    s.cards,
	}
}

// newCardID выдаёт устойчивый к коллизиям идентификатор. Исходная версия
// использовала таймстемп, который коллизировал при быстрых последовательных
// вызовах в пределах одного тика часов.
func newCardID() string {
	return uuid.NewString()
}

func warnMissingCard(op, id string) {
	if logger.Log != nil {
		logger.Log.WithFields(logrus.Fields{
			"op":      op,
			"card_id": id,
		}).Warn("store: карточка не найдена, операция пропущена")
	}
}
