package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"bloglist-backend/config"
	"bloglist-backend/db"
	"bloglist-backend/handlers"
	applog "bloglist-backend/logger"
	"bloglist-backend/store"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	bdb := db.Setup(cfg)
	defer bdb.Close()

	if err := db.CreateTables(context.Background(), bdb); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	h := handlers.New(store.NewBun(bdb), cfg.JWTKey())
	h.Register(e, !cfg.IsProduction())

	if !cfg.IsProduction() {
		logger.Info("starting server", zap.String("env", cfg.Env), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
