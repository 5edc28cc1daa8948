package service

import (
	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-studio/internal/models"
	"github.com/ignatzorin/proposal-studio/internal/pkg/apperror"
)

// CatalogService хранит in-memory каталоги клиентов, предложений и шаблонов.
// Каталоги живут только в пределах сессии — персистентности нет.
type CatalogService struct {
	clients   []models.Client
	proposals []models.ProposalSummary
	templates []models.Template
}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// NewDemoCatalogService создаёт каталог, наполненный демо-данными.
func NewDemoCatalogService(seed *SeedService) *CatalogService {
	return &CatalogService{
		clients:   seed.DemoClients(),
		proposals: seed.DemoProposals(),
		templates: seed.DemoTemplates(),
	}
}

// Clients возвращает клиентов в порядке добавления.
func (s *CatalogService) Clients() []models.Client {
	return s.clients
}

// AddClient регистрирует нового клиента и возвращает его.
func (s *CatalogService) AddClient(name, email, phone string) models.Client {
	client := models.Client{
		ID:     uuid.New(),
		Name:   name,
		Email:  email,
		Phone:  phone,
		Status: models.ClientStatusPending,
	}
	s.clients = append(s.clients, client)
	return client
}

// ClientByID ищет клиента по идентификатору.
func (s *CatalogService) ClientByID(id uuid.UUID) (models.Client, error) {
	for _, client := range s.clients {
		if client.ID == id {
			return client, nil
		}
	}
	return models.Client{}, apperror.ErrClientNotFound
}

// Proposals возвращает список предложений.
func (s *CatalogService) Proposals() []models.ProposalSummary {
	return s.proposals
}

// AddProposal регистрирует новое предложение в статусе Draft.
func (s *CatalogService) AddProposal(client, title, date string) models.ProposalSummary {
	proposal := models.ProposalSummary{
		ID:     uuid.New(),
		Client: client,
		Title:  title,
		Status: models.ProposalStatusDraft,
		Date:   date,
	}
	s.proposals = append(s.proposals, proposal)
	return proposal
}

// ProposalByID ищет предложение по идентификатору.
func (s *CatalogService) ProposalByID(id uuid.UUID) (models.ProposalSummary, error) {
	for _, proposal := range s.proposals {
		if proposal.ID == id {
			return proposal, nil
		}
	}
	return models.ProposalSummary{}, apperror.ErrProposalNotFound
}

// CountByStatus считает предложения по статусам для дашборда.
func (s *CatalogService) CountByStatus() map[string]int {
	counts := make(map[string]int)
	for _, proposal := range s.proposals {
		counts[proposal.Status]++
	}
	return counts
}

// Templates возвращает каталог шаблонов.
func (s *CatalogService) Templates() []models.Template {
	return s.templates
}

// TemplateByID ищет шаблон по идентификатору.
func (s *CatalogService) TemplateByID(id uuid.UUID) (models.Template, error) {
	for _, template := range s.templates {
		if template.ID == id {
			return template, nil
		}
	}
	return models.Template{}, apperror.ErrTemplateNotFound
}

// UseTemplate увеличивает счётчик использований шаблона.
func (s *CatalogService) UseTemplate(id uuid.UUID) error {
	for i := range s.templates {
		if s.templates[i].ID == id {
			s.templates[i].Uses++
			return nil
		}
	}
	return apperror.ErrTemplateNotFound
}

// RemoveTemplate удаляет шаблон из каталога.
func (s *CatalogService) RemoveTemplate(id uuid.UUID) error {
	for i := range s.templates {
		if s.templates[i].ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return nil
		}
	}
	return apperror.ErrTemplateNotFound
}
