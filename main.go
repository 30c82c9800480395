package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"marketing/internal/api"
	"marketing/internal/config"
	"marketing/internal/dashboard"
	"marketing/internal/db"
	"marketing/internal/telegram_api"
)

func main() {
	// --- Блок инициализации ---
	err := godotenv.Load()
	if err != nil {
		log.Println("Предупреждение: не удалось загрузить файл .env. Переменные окружения должны быть установлены иным способом.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Критическая ошибка: не удалось загрузить конфигурацию: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(ctx, cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("Критическая ошибка: не удалось инициализировать базу данных: %v", err)
	}
	defer store.Close()

	seeded, err := store.SeedDefaultServices(ctx)
	if err != nil {
		log.Fatalf("Критическая ошибка: не удалось заполнить каталог услуг: %v", err)
	}
	if seeded > 0 {
		log.Printf("Каталог услуг заполнен стандартными услугами: %d шт.", seeded)
	}

	var opts []dashboard.Option
	apiDeps := api.ApiDependencies{
		Config: cfg,
		Health: store.Ping,
	}
	if cfg.NotificationsEnabled() {
		bot, err := telegram_api.NewBotClient(cfg.TelegramToken, cfg.OwnerChatID, cfg.IsDev())
		if err != nil {
			// Без бота дашборд продолжает работать, только без уведомлений.
			log.Printf("Предупреждение: не удалось инициализировать Telegram бота: %v", err)
		} else {
			opts = append(opts, dashboard.WithNotifier(bot))
			apiDeps.Reports = bot
		}
	}
	apiDeps.Dashboard = dashboard.New(store, opts...)

	// --- Настройка роутера и Middleware ---
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", api.RequestIDHeader},
		ExposedHeaders:   []string{api.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	api.SetupRoutes(router, apiDeps)

	// Обработка запроса иконки, чтобы избежать ошибки 404 в логах
	router.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Запуск HTTP-сервера дашборда на порту %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("КРИТИЧЕСКАЯ ОШИБКА: не удалось запустить HTTP-сервер: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Получен сигнал завершения, останавливаем HTTP-сервер...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Ошибка при остановке HTTP-сервера: %v", err)
	}
	log.Println("Сервер остановлен.")
}
