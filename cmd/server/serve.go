package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/hr-backend/internal/config"
	"github.com/fadilmartias/hr-backend/internal/domain/fiber/handler"
	"github.com/fadilmartias/hr-backend/internal/middleware"
	"github.com/fadilmartias/hr-backend/internal/repository"
	"github.com/fadilmartias/hr-backend/internal/service"
	"github.com/fadilmartias/hr-backend/internal/usecase"
	"github.com/fadilmartias/hr-backend/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default command)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	appCfg := config.LoadAppConfig()
	dbCfg := config.LoadDBConfig()

	db, err := connectDB(dbCfg, appCfg, log)
	if err != nil {
		log.Error("database unavailable", zap.Error(err))
		return err
	}
	if dbCfg.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			log.Error("migration failed", zap.Error(err))
			return err
		}
	}

	llm, embedder, err := newLLM(ctx, config.LoadLLMConfig(), log)
	if err != nil {
		log.Error("LLM client unavailable", zap.Error(err))
		return err
	}
	log.Info("LLM client ready", zap.String("llm", llm.Name()), zap.Bool("embeddings", embedder != nil))

	app := newApp(appCfg, db, llm, embedder, log)

	go monitorGoroutines(ctx, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("port", appCfg.Port), zap.String("version", version))
		errCh <- app.Listen(appCfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return app.ShutdownWithTimeout(shutdownTimeout)
}

func newApp(appCfg *config.AppConfig, db *gorm.DB, llm service.LLMClient, embedder service.Embedder, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appCfg.Name,
		BodyLimit:    handler.MaxRequestBodySize,
		ErrorHandler: util.ErrorHandler(log),
	})

	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: appCfg.CORSAllowOrigins,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appCfg.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appCfg.IsProduction()
		},
	}))
	app.Use(healthcheck.New(healthcheck.Config{
		ReadinessProbe: func(c *fiber.Ctx) bool {
			sqlDB, err := db.DB()
			return err == nil && sqlDB.PingContext(c.UserContext()) == nil
		},
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(appCfg.RateLimitMax, 1*time.Minute))

	candidateRepo := repository.NewCandidateRepository(db)
	vacancyRepo := repository.NewVacancyRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)

	assistant := service.NewAssistantService(llm, log, config.LoadLLMConfig().MaxLogLength)

	candidates := usecase.NewCandidateUsecase(candidateRepo, embedder, log)
	vacancies := usecase.NewVacancyUsecase(vacancyRepo, candidateRepo, interviewRepo, embedder, log)
	interviews := usecase.NewInterviewUsecase(candidateRepo, vacancyRepo, interviewRepo, assistant, log)
	search := usecase.NewSearchUsecase(assistant)

	handler.NewRootHandler(appCfg.Name).RegisterRoutes(app)
	handler.NewCandidateHandler(candidates).RegisterRoutes(app)
	handler.NewVacancyHandler(vacancies).RegisterRoutes(app)
	handler.NewInterviewHandler(interviews, log).RegisterRoutes(app)
	handler.NewSearchHandler(search).RegisterRoutes(app)

	return app
}

// newLLM builds the configured chat client. The embedder is nil unless
// embeddings are enabled; embeddings always come from Gemini.
func newLLM(ctx context.Context, llmCfg *config.LLMConfig, log *zap.Logger) (service.LLMClient, service.Embedder, error) {
	var gemini *service.GeminiService
	getGemini := func() (*service.GeminiService, error) {
		if gemini != nil {
			return gemini, nil
		}
		g, err := service.NewGeminiService(ctx, config.LoadGeminiConfig(), llmCfg, log)
		if err != nil {
			return nil, err
		}
		gemini = g
		return gemini, nil
	}

	var llm service.LLMClient
	switch llmCfg.Provider {
	case config.ProviderGemini:
		g, err := getGemini()
		if err != nil {
			return nil, nil, err
		}
		llm = g
	case config.ProviderOpenRouter:
		o, err := service.NewOpenRouterService(config.LoadOpenRouterConfig(), llmCfg, log)
		if err != nil {
			return nil, nil, err
		}
		llm = o
	default:
		return nil, nil, fmt.Errorf("unknown LLM_PROVIDER %q", llmCfg.Provider)
	}

	if !llmCfg.EmbeddingsEnabled {
		return llm, nil, nil
	}
	g, err := getGemini()
	if err != nil {
		return nil, nil, errors.Join(errors.New("embeddings need a Gemini client"), err)
	}
	return llm, g, nil
}

func monitorGoroutines(ctx context.Context, log *zap.Logger) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			log.Debug("runtime stats", zap.Int("goroutines", runtime.NumGoroutine()))
		}
	}
}
