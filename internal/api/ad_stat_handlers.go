package api

import (
	"net/http"

	"marketing/internal/models"
)

func (h *handler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Dashboard.ListCampaigns(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Не удалось получить статистику рекламы")
		return
	}
	writeJSONSuccess(w, "Статистика рекламы получена", stats)
}

func (h *handler) AddCampaign(w http.ResponseWriter, r *http.Request) {
	var in models.NewAdStat
	if !decodeBody(w, r, &in) {
		return
	}
	stat, err := h.deps.Dashboard.AddCampaign(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Не удалось добавить кампанию")
		return
	}
	writeJSONSuccess(w, "Кампания добавлена", stat)
}

func (h *handler) ListAdChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.deps.Dashboard.ListAdChannels(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Не удалось получить список каналов")
		return
	}
	writeJSONSuccess(w, "Каналы получены", channels)
}

func (h *handler) ChannelEfficiency(w http.ResponseWriter, r *http.Request) {
	rows, err := h.deps.Dashboard.ChannelEfficiency(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Не удалось рассчитать эффективность каналов")
		return
	}
	writeJSONSuccess(w, "Эффективность каналов рассчитана", rows)
}
