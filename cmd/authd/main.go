package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/authcore/pkg/config"
	"github.com/dmitrymomot/authcore/pkg/credstore"
	"github.com/dmitrymomot/authcore/pkg/jwt"
	"github.com/dmitrymomot/authcore/pkg/logger"
	"github.com/dmitrymomot/authcore/pkg/sessiontoken"
)

func main() {
	var (
		cfg        Config
		jwtCfg     jwt.Config
		sessionCfg sessiontoken.Config
	)
	config.MustLoad(&cfg)
	config.MustLoad(&jwtCfg)
	config.MustLoad(&sessionCfg)

	logOpt := logger.WithDevelopment("authd")
	if cfg.Environment == "production" {
		logOpt = logger.WithProduction("authd")
	}
	log := logger.New(logOpt)

	tokens, err := jwt.NewFromConfig(jwtCfg)
	if err != nil {
		log.Error("jwt service init failed", logger.Error(err))
		os.Exit(1)
	}

	users := credstore.New(credstore.WithLogger(log))
	sessions := sessiontoken.NewFromConfig(sessionCfg, sessiontoken.WithLogger(log))
	defer sessions.Close()

	srv := &server{
		cfg:      cfg,
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		tokenTTL: jwtCfg.ExpiresInHours,
		log:      log,
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("authd listening", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", logger.Error(err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", logger.Error(err))
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Get("/me", s.handleMe)
		r.Post("/password", s.handleChangePassword)

		r.Post("/token", s.handleToken)

		r.Group(func(r chi.Router) {
			r.Use(jwt.Middleware(s.tokens))
			r.Get("/protected", s.handleProtected)

			r.With(jwt.RequireRole("admin")).Get("/admin", s.handleAdmin)
		})
	})

	return r
}
