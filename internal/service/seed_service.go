package service

import (
	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-studio/internal/models"
	"github.com/ignatzorin/proposal-studio/internal/store"
)

// SeedService наполняет сессию редактирования демонстрационными данными.
// Дефолты карточек и посевные данные сознательно разведены: новые карточки
// создаёт фабрика в store, здесь живёт только содержимое демо-предложения.
type SeedService struct{}

func NewSeedService() *SeedService {
	return &SeedService{}
}

// Apply записывает демо-метаданные и демо-карточки в хранилище.
func (s *SeedService) Apply(st *store.CardStore) {
	st.SetMetadata(s.DemoMetadata())
	st.SetCards(s.DemoCards())
}

// DemoMetadata возвращает метаданные демо-предложения.
func (s *SeedService) DemoMetadata() models.ProposalMetadata {
	return models.ProposalMetadata{
		Title:          "Website Redesign",
		Client:         "Acme Corp",
		ClientAddress:  "123 Main St, Suite 100, City, State 12345",
		Description:    "Complete website redesign with modern UI/UX",
		JobNumber:      "302798",
		PreparedBy:     "Your Name",
		Version:        "1.0",
		EventLocation:  "Client Office",
		EventAddress:   "123 Event Venue, City, State 12345",
		EventStartDate: "2025-11-01",
		EventEndDate:   "2025-11-15",
		ContactName:    "John Doe",
		ContactPhone:   "+1 (555) 123-4567",
		ContactEmail:   "john.doe@acmecorp.com",
		TermsAndConditions: "1. Payment Terms: 50% upfront, 50% upon completion.\n" +
			"2. Project timeline is subject to client feedback and approval times.\n" +
			"3. Additional revisions beyond the agreed scope will be charged separately.\n" +
			"4. All intellectual property rights transfer upon final payment.\n" +
			"5. Either party may terminate with 30 days written notice.",
	}
}

// DemoCards возвращает карточки демо-предложения: обзор, план работ и смету.
func (s *SeedService) DemoCards() []models.Card {
	return []models.Card{
		{
			ID:   "1",
			Type: models.CardTypeText,
			Data: models.TextSectionData{
				Title: "Project Overview",
				Content: "This comprehensive redesign project aims to transform your digital presence " +
					"with a modern, user-centric approach. We'll leverage cutting-edge technologies " +
					"and design principles to create an engaging, performant website that drives results.",
			},
		},
		{
			ID:   "2",
			Type: models.CardTypeTimeline,
			Data: models.TimelineData{
				{Phase: "Discovery & Planning", Duration: "2 weeks", Tasks: "Requirements gathering, research, competitive analysis"},
				{Phase: "Design", Duration: "3 weeks", Tasks: "Wireframes, mockups, prototypes, user testing"},
				{Phase: "Development", Duration: "6 weeks", Tasks: "Frontend and backend implementation, integrations"},
				{Phase: "Testing & Launch", Duration: "1 week", Tasks: "QA testing, bug fixes, deployment"},
			},
		},
		{
			ID:   "3",
			Type: models.CardTypePricing,
			Data: models.PricingData{
				{
					ID:    "1",
					Title: "Design & Development",
					Items: []models.PriceItem{
						{
							Description: "UI/UX Design",
							Quantity:    1,
							Rate:        15000,
							Duration:    "3 weeks",
							Discount:    0,
							Notes:       []string{"Includes 3 rounds of revisions"},
						},
						{
							Description: "Frontend Development",
							Quantity:    1,
							Rate:        20000,
							Duration:    "4 weeks",
							Discount:    0,
							Notes:       []string{"React + TypeScript", "Responsive design"},
						},
						{
							Description: "Backend Development",
							Quantity:    1,
							Rate:        15000,
							Duration:    "2 weeks",
							Discount:    10,
							Notes:       []string{"API integration", "Database setup"},
						},
					},
				},
			},
		},
	}
}

// DemoClients возвращает демо-каталог клиентов.
func (s *SeedService) DemoClients() []models.Client {
	return []models.Client{
		{ID: uuid.New(), Name: "Acme Corp", Email: "contact@acme.com", Phone: "+1 234 567 8900", Projects: 5, Status: models.ClientStatusActive},
		{ID: uuid.New(), Name: "TechStart Inc", Email: "hello@techstart.io", Phone: "+1 234 567 8901", Projects: 3, Status: models.ClientStatusActive},
		{ID: uuid.New(), Name: "Global Solutions", Email: "info@globalsol.com", Phone: "+1 234 567 8902", Projects: 8, Status: models.ClientStatusActive},
		{ID: uuid.New(), Name: "Innovate LLC", Email: "team@innovate.com", Phone: "+1 234 567 8903", Projects: 2, Status: models.ClientStatusPending},
	}
}

// DemoProposals возвращает демо-список предложений.
func (s *SeedService) DemoProposals() []models.ProposalSummary {
	return []models.ProposalSummary{
		{ID: uuid.New(), Client: "Acme Corp", Title: "Website Redesign", Status: models.ProposalStatusDraft, Date: "2025-10-05"},
		{ID: uuid.New(), Client: "TechStart Inc", Title: "Mobile App Development", Status: models.ProposalStatusSent, Date: "2025-10-04"},
		{ID: uuid.New(), Client: "Global Solutions", Title: "Cloud Migration", Status: models.ProposalStatusApproved, Date: "2025-10-03"},
	}
}

// DemoTemplates возвращает демо-каталог шаблонов.
func (s *SeedService) DemoTemplates() []models.Template {
	return []models.Template{
		{ID: uuid.New(), Name: "Standard Proposal", Description: "Basic proposal template for most projects", Uses: 15},
		{ID: uuid.New(), Name: "Web Development", Description: "Specialized template for web projects", Uses: 8},
		{ID: uuid.New(), Name: "Consulting Services", Description: "Template for consulting engagements", Uses: 12},
		{ID: uuid.New(), Name: "Marketing Campaign", Description: "For marketing and advertising proposals", Uses: 6},
	}
}
