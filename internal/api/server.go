package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/limbo/habitpulse/docs"
	"github.com/limbo/habitpulse/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mx                 *chi.Mux
	srv                *http.Server
	userService        service.UserServiceI
	habitService       service.HabitsServiceI
	completionsService service.CompletionsServiceI
	progressService    service.ProgressServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	HabitsService      service.HabitsServiceI
	CompletionsService service.CompletionsServiceI
	ProgressService    service.ProgressServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		habitService:       servicesOptions.HabitsService,
		completionsService: servicesOptions.CompletionsService,
		progressService:    servicesOptions.ProgressService,
		jwtService:         servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/auth/account", s.DeleteAccount)
			r.Route("/habits", func(r chi.Router) {
				r.Post("/", s.CreateHabit)
				r.Get("/", s.GetHabits)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.GetHabit)
					r.Put("/", s.UpdateHabit)
					r.Delete("/", s.DeleteHabit)
					r.Post("/completions/toggle", s.ToggleCompletion)
					r.Put("/completions", s.SetCompletion)
					r.Get("/completions", s.GetCompletions)
					r.Get("/stats", s.GetHabitStats)
				})
			})
			r.Get("/progress/stats", s.GetStats)
			r.Get("/progress/gamification", s.GetGamification)
			r.Post("/progress/refresh", s.RefreshStreaks)
		})
	})
}

// Router exposes the full handler chain, mostly for tests.
func (s *Server) Router() http.Handler {
	return s.mx
}

func (s *Server) Run(address string) error {
	s.srv = &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	slog.Info("api server started", slog.String("address", address))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
