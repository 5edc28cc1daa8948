// Package preview рендерит документ предложения в текстовый вид —
// консольный аналог страницы превью для проверки содержимого без UI.
package preview

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ignatzorin/proposal-studio/internal/models"
	"github.com/ignatzorin/proposal-studio/internal/service"
)

// Renderer превращает документ в текст. Карточки с пустым url (image, video)
// не отображаются вовсе — это политика валидности контента, а не ошибка.
type Renderer struct {
	pricing  *service.PricingService
	timeline *service.TimelineService
	video    *service.VideoService
	currency string
}

func NewRenderer(pricing *service.PricingService, timeline *service.TimelineService, video *service.VideoService, currency string) *Renderer {
	return &Renderer{
		pricing:  pricing,
		timeline: timeline,
		video:    video,
		currency: currency,
	}
}

// Render возвращает текстовое представление документа: шапка с метаданными,
// карточки в порядке документа, итоги и условия.
func (r *Renderer) Render(doc models.ProposalDocument) string {
	var b strings.Builder

	r.renderHeader(&b, doc.Metadata)

	for _, card := range doc.Cards {
		r.renderCard(&b, card)
	}

	r.renderTotals(&b, doc)

	if doc.Metadata.HasTermsAndConditions() {
		b.WriteString("Terms & Conditions\n")
		b.WriteString(doc.Metadata.TermsAndConditions)
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Renderer) renderHeader(b *strings.Builder, md models.ProposalMetadata) {
	fmt.Fprintf(b, "%s\n", md.Title)
	fmt.Fprintf(b, "Prepared for %s by %s (v%s, job #%s)\n", md.Client, md.PreparedBy, md.Version, md.JobNumber)
	if md.Description != "" {
		fmt.Fprintf(b, "%s\n", md.Description)
	}
	if md.EventStartDate != "" || md.EventEndDate != "" {
		fmt.Fprintf(b, "Event: %s, %s — %s\n", md.EventLocation, md.EventStartDate, md.EventEndDate)
	}
	if md.ContactName != "" {
		fmt.Fprintf(b, "Contact: %s, %s, %s\n", md.ContactName, md.ContactPhone, md.ContactEmail)
	}
	b.WriteString("\n")
}

func (r *Renderer) renderCard(b *strings.Builder, card models.Card) {
	switch data := card.Data.(type) {
	case models.TextSectionData:
		fmt.Fprintf(b, "## %s\n%s\n\n", data.Title, data.Content)
	case models.TimelineData:
		b.WriteString("## Project Timeline\n")
		for _, phase := range data {
			fmt.Fprintf(b, "- %s (%s): %s\n", phase.Phase, phase.Duration, phase.Tasks)
		}
		b.WriteString("\n")
	case models.PricingData:
		b.WriteString("## Pricing Breakdown\n")
		for _, section := range data {
			r.renderPricingSection(b, section)
		}
	case models.ImageCardData:
		if data.URL == "" {
			return
		}
		fmt.Fprintf(b, "[Image] %s", data.URL)
		if data.Caption != "" {
			fmt.Fprintf(b, " — %s", data.Caption)
		}
		b.WriteString("\n\n")
	case models.VideoCardData:
		if data.URL == "" {
			return
		}
		embed := r.video.Resolve(data.URL, data.Type)
		if embed == "" {
			return
		}
		fmt.Fprintf(b, "[Video] %s", embed)
		if data.Caption != "" {
			fmt.Fprintf(b, " — %s", data.Caption)
		}
		b.WriteString("\n\n")
	case models.TeamData:
		b.WriteString("## Team & Expertise\n")
		for _, member := range data {
			fmt.Fprintf(b, "- %s, %s: %s\n", member.Name, member.Role, member.Bio)
		}
		b.WriteString("\n")
	case models.ImplementationData:
		b.WriteString("## Implementation Plan\n")
		for i, step := range data {
			fmt.Fprintf(b, "%d. %s (%s): %s\n", i+1, step.Title, step.Duration, step.Description)
		}
		b.WriteString("\n")
	case models.RiskData:
		b.WriteString("## Risk Mitigation\n")
		for _, risk := range data {
			fmt.Fprintf(b, "- [%s] %s → %s\n", risk.Impact, risk.Risk, risk.Mitigation)
		}
		b.WriteString("\n")
	case models.SupportData:
		b.WriteString("## Support & Maintenance\n")
		for _, item := range data {
			fmt.Fprintf(b, "- %s (%s, %s): %s\n", item.Title, item.Duration, item.Cost, item.Description)
		}
		b.WriteString("\n")
	case models.InfographicData:
		fmt.Fprintf(b, "## %s\n", data.Title)
		for _, item := range data.Items {
			fmt.Fprintf(b, "- %s: %s\n", item.Label, item.Value)
		}
		b.WriteString("\n")
	case models.BeforeAfterData:
		fmt.Fprintf(b, "## %s\n", data.Title)
		fmt.Fprintf(b, "%s: %s\n", data.BeforeTitle, data.BeforeDescription)
		fmt.Fprintf(b, "%s: %s\n\n", data.AfterTitle, data.AfterDescription)
	case models.FAQData:
		fmt.Fprintf(b, "## %s\n", data.Title)
		for _, item := range data.Items {
			fmt.Fprintf(b, "Q: %s\nA: %s\n", item.Question, item.Answer)
		}
		b.WriteString("\n")
	}
}

func (r *Renderer) renderPricingSection(b *strings.Builder, section models.PricingSection) {
	fmt.Fprintf(b, "### %s\n", section.Title)

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Description", "Qty", "Rate", "Duration", "Discount", "Total"})
	for _, item := range section.Items {
		t.AppendRow(table.Row{
			item.Description,
			item.Quantity,
			r.money(item.Rate),
			item.Duration,
			fmt.Sprintf("%.0f%%", item.Discount),
			r.money(r.pricing.ItemTotal(item)),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Section Total", r.money(r.pricing.SectionTotal(section))})
	b.WriteString(t.Render())
	b.WriteString("\n")

	for _, item := range section.Items {
		for _, note := range item.Notes {
			if note != "" {
				fmt.Fprintf(b, "  * %s\n", note)
			}
		}
	}
	b.WriteString("\n")
}

func (r *Renderer) renderTotals(b *strings.Builder, doc models.ProposalDocument) {
	subtotal := r.pricing.Subtotal(doc)
	savings := r.pricing.TotalDiscount(doc)
	grand := r.pricing.GrandTotal(doc)
	weeks := r.timeline.TotalWeeks(doc)

	fmt.Fprintf(b, "Subtotal:      %s\n", r.money(subtotal))
	fmt.Fprintf(b, "Total Savings: %s\n", r.money(savings))
	fmt.Fprintf(b, "Grand Total:   %s\n", r.money(grand))
	fmt.Fprintf(b, "Estimated Duration: %d weeks\n\n", weeks)
}

// money форматирует сумму для показа; округление происходит только здесь.
func (r *Renderer) money(v float64) string {
	return fmt.Sprintf("%s%.2f", r.currency, v)
}
