package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/skillmatch/internal/bot"
	"github.com/maxaizer/skillmatch/internal/clients/gemini"
	"github.com/maxaizer/skillmatch/internal/clients/jsearch"
	"github.com/maxaizer/skillmatch/internal/config"
	"github.com/maxaizer/skillmatch/internal/logger"
	"github.com/maxaizer/skillmatch/internal/metrics"
	"github.com/maxaizer/skillmatch/internal/repositories"
	"github.com/maxaizer/skillmatch/internal/services"
	log "github.com/sirupsen/logrus"
)

func newRecommender(cfg config.SearchConfig) *services.Recommender {

	searchClient, err := jsearch.NewClient(jsearch.Config{
		BaseURL:        cfg.BaseURL,
		APIKey:         cfg.APIKey,
		APIHost:        cfg.APIHost,
		ResultsPerPage: cfg.ResultsPerPage,
	})
	if err != nil {
		log.Fatalf("can't create job search client: %v", err)
	}
	searchClient.SetRateLimit(cfg.MaxRequestsPerSecond)

	recommender, err := services.NewRecommender(
		services.NewCachedSearcher(searchClient, cfg.CacheTTL), cfg.Timeout, searchClient.ResultsPerPage())
	if err != nil {
		log.Fatalf("can't create recommender: %v", err)
	}
	return recommender
}

func newResumeParser(ctx context.Context, cfg config.AIConfig) (*services.ResumeParser, *gemini.Client) {

	aiClient, err := gemini.NewClient(ctx, cfg.Key, gemini.Model(cfg.Model))
	if err != nil {
		log.Fatalf("can't create AI client: %v", err)
	}
	aiClient.SetMinuteRateLimit(cfg.MaxRequestsPerMinute)
	aiClient.SetDayRateLimit(cfg.MaxRequestsPerDay)

	return services.NewResumeParser(aiClient), aiClient
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(ctx, cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Metrics.Port)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	profiles := repositories.NewProfilesRepository(dbContext.DB)
	savedJobs := repositories.NewSavedJobsRepository(dbContext.DB)
	bus := EventBus.New()

	recorder, err := metrics.NewSavedJobsRecorder(bus)
	if err != nil {
		log.Fatalf("can't subscribe metrics to events: %v", err)
	}
	defer recorder.Stop()

	resumeParser, aiClient := newResumeParser(ctx, cfg.AI)
	defer aiClient.Close()

	cleaner, err := services.NewSavedJobsCleaner(savedJobs, cfg.DB.SavedJobRetentionDays)
	if err != nil {
		log.Fatalf("can't create saved jobs cleaner: %v", err)
	}
	cleaner.Start()
	defer cleaner.Stop()

	tgbot, err := bot.NewBot(cfg.Bot.Token, bus, bot.Services{
		Recommender: newRecommender(cfg.Search),
		Profiles:    profiles,
		SavedJobs:   services.NewSavedJobsService(bus, savedJobs),
		Resumes:     services.NewResumeService(bus, resumeParser, profiles),
	})
	if err != nil {
		log.Fatalf("can't create bot: %v", err)
	}
	go tgbot.Run()

	<-ctx.Done()

	log.Info("Shutting down services...")
	tgbot.Stop()
	log.Info("Services stopped.")
}
