package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/luisapuppin/escala360/config"
	"github.com/luisapuppin/escala360/internal/api/handler"
	"github.com/luisapuppin/escala360/internal/api/middleware"
	"github.com/luisapuppin/escala360/internal/api/router"
	"github.com/luisapuppin/escala360/internal/repository"
	"github.com/luisapuppin/escala360/internal/seed"
	"github.com/luisapuppin/escala360/internal/service"
	"github.com/luisapuppin/escala360/pkg/database"
	applogger "github.com/luisapuppin/escala360/pkg/logger"
	"github.com/luisapuppin/escala360/pkg/mq"
	"github.com/luisapuppin/escala360/pkg/redis"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:          "escala360",
		Short:        "API de escalas de plantão",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "arquivo de configuração (yaml)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(auditConsumerCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia o servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrações do banco",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica todas as migrações pendentes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *database.Migrator) error { return m.Up() })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Desfaz todas as migrações",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *database.Migrator) error { return m.Down() })
		},
	})

	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Grava os dados de demonstração (idempotente)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			db, err := openDB(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDB(db)

			return seed.Run(cmd.Context(), repository.NewRepository(db), logger)
		},
	}
}

func auditConsumerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit-consumer",
		Short: "Consome a fila de auditoria e grava os eventos no log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			consumer := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Queue, logger)
			logger.Info("consumidor de auditoria iniciado", zap.String("queue", cfg.MQ.Queue))
			if err := consumer.Run(ctx, logAuditEvent(logger)); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			logger.Info("consumidor de auditoria encerrado")
			return nil
		},
	}
}

// ── inicialização ──

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao carregar configuração: %w", err)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao inicializar log: %w", err)
	}
	return cfg, logger, nil
}

func openDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := database.NewDB(&cfg.Storage, cfg.Log.Level == "debug", logger)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no banco: %w", err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, _ := db.DB(); sqlDB != nil {
		sqlDB.Close()
	}
}

func withMigrator(fn func(m *database.Migrator) error) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := openDB(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB(db)

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	m, err := database.NewMigrator(sqlDB, cfg.Storage.Driver, logger)
	if err != nil {
		return err
	}
	return fn(m)
}

func runServer() error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("iniciando aplicação",
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 1. banco + migrações
	db, err := openDB(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB(db)

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := database.RunMigrations(sqlDB, cfg.Storage.Driver, logger); err != nil {
		return fmt.Errorf("falha nas migrações: %w", err)
	}

	// 2. Redis (opcional; sem ele não há cache nem rate limit)
	var (
		cache   service.Cache
		limiter middleware.RateLimiter
		rdb     *redis.Client
	)
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis indisponível, seguindo sem cache e sem rate limit", zap.Error(err))
		} else {
			cache, limiter = rdb, rdb
			defer rdb.Close()
		}
	}

	// 3. RabbitMQ (opcional)
	var publisher service.EventPublisher
	if cfg.MQ.Enabled {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Queue, logger)
		if err != nil {
			logger.Warn("RabbitMQ indisponível, eventos de auditoria não serão publicados", zap.Error(err))
		} else {
			publisher = p
			defer p.Close()
		}
	}

	// 4. Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, cache, publisher, logger)
	h := handler.NewHandler(svc)
	engine := router.Setup(cfg, h, repo, limiter, logger)

	// 5. HTTP com desligamento gracioso
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("servidor HTTP iniciado", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Info("sinal recebido, encerrando...", zap.String("signal", sig.String()))
	case err := <-errCh:
		return fmt.Errorf("servidor HTTP: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("falha no desligamento do servidor", zap.Error(err))
	}

	logger.Info("servidor encerrado")
	return nil
}
