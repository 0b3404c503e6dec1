package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitdesk/internal/audit"
	"fitdesk/internal/config"
	"fitdesk/internal/db"
	httpserver "fitdesk/internal/http"
	"fitdesk/internal/logger"
	"fitdesk/internal/permissions"
	"fitdesk/internal/rbac"
	"fitdesk/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel, cfg.LogFormat, "fitdesk-api")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	gdb, err := db.Connect(cfg.DSN, lg)
	if err != nil {
		lg.Fatal("database", zap.Error(err))
	}
	if err := db.AutoMigrate(gdb); err != nil {
		lg.Fatal("migrate", zap.Error(err))
	}
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		lg.Info("migration complete")
		return
	}
	if _, err := seed.FirstSetup(gdb, cfg.SeedAdminEmail, cfg.SeedAdminPassword, lg); err != nil {
		lg.Fatal("seed", zap.Error(err))
	}

	store := audit.NewGormSink(gdb, lg, 0)
	auditor := permissions.NewAuditor(audit.NewZapSink(lg, cfg.Production()), store)

	r := httpserver.NewRouter(httpserver.Options{
		DB:        gdb,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.JWTTTL,
		Checker:   rbac.NewChecker(auditor),
		Log:       lg,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Error("shutdown", zap.Error(err))
	}
	// flush queued audit rows after the last request has finished
	store.Close()
}
