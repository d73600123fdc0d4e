package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"todoList/internal/app"
	"todoList/internal/config"
	"todoList/internal/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", os.Getenv("TODO_CONFIG"), "путь к config.yml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("загрузка конфига: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg).Init(ctx)
	if err != nil {
		log.Fatalf("инициализация приложения: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		logger.Error("Приложение завершилось с ошибкой", err, zap.String("addr", cfg.GetServerAddr()))
		os.Exit(1)
	}
}
