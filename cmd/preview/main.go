package main

import (
	"fmt"
	"log"

	"github.com/ignatzorin/proposal-studio/internal/config"
	"github.com/ignatzorin/proposal-studio/internal/logger"
	"github.com/ignatzorin/proposal-studio/internal/preview"
	"github.com/ignatzorin/proposal-studio/internal/service"
	"github.com/ignatzorin/proposal-studio/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.LogLevel)
	if cfg.Env == "development" {
		logger.SetTextFormatter()
	}

	// Собираем сессию редактирования с демо-данными.
	st := store.NewCardStore()
	seed := service.NewSeedService()
	seed.Apply(st)

	pricing := service.NewPricingService()
	timeline := service.NewTimelineService()
	video := service.NewVideoService()
	summary := service.NewSummaryService(pricing, timeline)

	doc := st.Document()
	result := summary.Summarize(doc)
	logger.Log.WithField("cards", len(doc.Cards)).
		WithField("grand_total", result.GrandTotal).
		WithField("sendable", result.Sendable).
		Info("preview: документ собран")

	renderer := preview.NewRenderer(pricing, timeline, video, cfg.Currency)
	fmt.Printf("%s — %s\n\n", cfg.CompanyName, cfg.Env)
	fmt.Print(renderer.Render(doc))
}
