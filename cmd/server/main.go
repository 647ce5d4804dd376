package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignatzorin/contract-dictionary/internal/codes"
	"github.com/ignatzorin/contract-dictionary/internal/config"
	httpHandlers "github.com/ignatzorin/contract-dictionary/internal/http/handlers"
	httpRouter "github.com/ignatzorin/contract-dictionary/internal/http/router"
	"github.com/ignatzorin/contract-dictionary/internal/logger"
	"github.com/ignatzorin/contract-dictionary/internal/service"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Справочник собирается один раз при старте и дальше только читается.
	// Дубликат кода в конфигурации — фатальная ошибка сборки реестра.
	registry := codes.DefaultRegistry()

	dictionaryService := service.NewDictionaryService(registry, cfg.ClassPrefix)

	// HTTP хэндлеры.
	dictionaryHandler := httpHandlers.NewDictionaryHandler(dictionaryService)
	healthHandler := httpHandlers.NewHealthHandler(dictionaryService)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, registry, dictionaryHandler, healthHandler)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s, категорий в справочнике: %d", cfg.HTTPPort, registry.Len())

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}
