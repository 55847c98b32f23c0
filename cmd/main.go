package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/internkaksha/internkaksha-server/internal/api/http/context"
	"github.com/internkaksha/internkaksha-server/internal/api/http/router"
	httpServer "github.com/internkaksha/internkaksha-server/internal/api/http/server"
	"github.com/internkaksha/internkaksha-server/internal/config"
	"github.com/internkaksha/internkaksha-server/internal/logger"
	"github.com/internkaksha/internkaksha-server/internal/model"
	"github.com/internkaksha/internkaksha-server/internal/password"
	"github.com/internkaksha/internkaksha-server/internal/repository/postgres"
	"github.com/internkaksha/internkaksha-server/internal/server"
	"github.com/internkaksha/internkaksha-server/internal/service"
	storage "github.com/internkaksha/internkaksha-server/internal/storage/minio"
	"github.com/internkaksha/internkaksha-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.Environment)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	storageClient, err := storage.Open(ctx, storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	hasher := password.NewBcrypt(cfg.Bcrypt.Cost)

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	taskService := service.NewTask(taskRepo, logger)
	resumeService := service.NewResume(storageClient, logger)
	ctxMgr := httpctx.NewManager()

	r := router.New(authService, taskService, resumeService, db, ctxMgr, router.Options{
		Environment:    cfg.Environment,
		Development:    cfg.IsDevelopment(),
		CORSOrigin:     cfg.HTTP.CORSOrigin,
		BodyLimitBytes: cfg.HTTP.BodyLimitBytes,
	}, logger)

	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "environment", cfg.Environment)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
