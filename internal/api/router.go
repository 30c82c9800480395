package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"marketing/internal/config"
	"marketing/internal/dashboard"
)

// ReportSender отправляет файл отчета владельцу. Его реализует *telegram_api.BotClient.
type ReportSender interface {
	SendReport(ctx context.Context, filename string, data []byte, caption string) error
}

// ApiDependencies содержит зависимости для обработчиков API.
type ApiDependencies struct {
	Dashboard *dashboard.Service
	Config    *config.Config
	// Reports может быть nil: тогда отправка выгрузок в Telegram отключена.
	Reports ReportSender
	// Health проверяет доступность хранилища; nil - проверка не выполняется.
	Health func(ctx context.Context) error
}

type handler struct {
	deps ApiDependencies
}

// SetupRoutes настраивает все маршруты для API.
func SetupRoutes(r chi.Router, deps ApiDependencies) {
	h := &handler{deps: deps}

	r.Route("/api", func(r chi.Router) {
		r.Use(RequestIDMiddleware)

		r.Get("/health", h.Health)

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.ListClients)
			r.Post("/", h.RegisterClient)
			r.Get("/{id}/recommendation", h.GetRecommendation)
			r.Get("/{id}/referral-qr", h.GetReferralQR)
		})

		r.Route("/services", func(r chi.Router) {
			r.Get("/", h.ListServices)
			r.Post("/", h.AddService)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.ListOrders)
			r.Post("/", h.PlaceOrder)
			r.Post("/{id}/complete", h.CompleteOrder)
		})

		r.Route("/ad-stats", func(r chi.Router) {
			r.Get("/", h.ListCampaigns)
			r.Post("/", h.AddCampaign)
			r.Get("/channels", h.ListAdChannels)
			r.Get("/efficiency", h.ChannelEfficiency)
		})

		r.Get("/stats/summary", h.Summary)

		r.Get("/export/{table}.xlsx", h.ExportTable)
		r.Post("/export/{table}/send", h.SendExport)
	})
}

func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.deps.Health != nil {
		if err := h.deps.Health(r.Context()); err != nil {
			writeJSONError(w, http.StatusServiceUnavailable, "База данных недоступна")
			return
		}
	}
	writeJSONSuccess(w, "OK", nil)
}
