// @title Habit progress API
// @description API for tracking habits, streaks and progress
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/limbo/habitpulse/internal/api"
	"github.com/limbo/habitpulse/internal/repository"
	"github.com/limbo/habitpulse/internal/service"
	"github.com/limbo/habitpulse/pkg/cleanup"
	"github.com/limbo/habitpulse/pkg/config"
	jwtservice "github.com/limbo/habitpulse/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	cfg.SetupLogger()
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := repository.NewPool(ctx, &dbCfg)
	cancel()
	if err != nil {
		slog.Error("database connection failed", slog.String("error", err.Error()))
		return
	}
	usersRepo := repository.NewUsersRepoWithConn(pool)
	habitsRepo := repository.NewHabitsRepoWithConn(pool)
	completionsRepo := repository.NewCompletionsRepoWithConn(pool)

	calendar := service.Calendar{
		Now:       time.Now,
		Location:  cfg.GetLocation("TIMEZONE"),
		WeekStart: cfg.GetWeekday("WEEK_START"),
	}
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo),
		HabitsService:      service.NewHabitsService(habitsRepo),
		CompletionsService: service.NewCompletionsService(habitsRepo, completionsRepo, calendar),
		ProgressService:    service.NewProgressService(habitsRepo, completionsRepo, calendar),
		JwtService:         jwtservice.NewWithTTL(cfg.GetString("JWT_SECRET"), cfg.GetDuration("TOKEN_TTL", time.Hour)),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	}()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err = <-errCh:
		if err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
		}
		return
	case sig := <-stop:
		slog.Info("shutting down", slog.String("signal", sig.String()))
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.GetDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
	defer shutdownCancel()
	if err = serv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
}
