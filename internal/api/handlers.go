package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"marketing/internal/db"
	"marketing/internal/models"
	"marketing/internal/utils"
)

// jsonResponse - вспомогательная структура для стандартного ответа API
type jsonResponse struct {
	Status  string      `json:"status"` // "success" или "error"
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(jsonResponse{Status: "error", Message: message})
}

func writeJSONSuccess(w http.ResponseWriter, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(jsonResponse{Status: "success", Message: message, Data: data})
}

// writeServiceError переводит ошибку бизнес-операции в HTTP-статус.
// Ошибки формы отдаются клиенту как есть, внутренние ошибки только логируются.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, utils.ErrEmptyField), errors.Is(err, utils.ErrInvalidDate):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("API [%s] %s %s: %v", RequestIDFromContext(r.Context()), r.Method, r.URL.Path, err)
		writeJSONError(w, http.StatusInternalServerError, message)
	}
}

// parseID читает положительный целый параметр пути.
func parseID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Некорректное тело запроса: "+err.Error())
		return false
	}
	return true
}

func (h *handler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.deps.Dashboard.ListClients(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Не удалось получить список клиентов")
		return
	}
	writeJSONSuccess(w, "Клиенты получены", clients)
}

func (h *handler) RegisterClient(w http.ResponseWriter, r *http.Request) {
	var in models.NewClient
	if !decodeBody(w, r, &in) {
		return
	}
	client, err := h.deps.Dashboard.RegisterClient(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Не удалось добавить клиента")
		return
	}
	writeJSONSuccess(w, "Клиент добавлен", client)
}

// recommendationResponse - ответ с рекомендованной услугой.
type recommendationResponse struct {
	ClientID       int64  `json:"client_id"`
	Recommendation string `json:"recommendation"`
}

func (h *handler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "Некорректный ID клиента")
		return
	}
	rec, err := h.deps.Dashboard.Recommend(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Не удалось подобрать рекомендацию")
		return
	}
	writeJSONSuccess(w, "Рекомендация подобрана", recommendationResponse{ClientID: id, Recommendation: rec})
}

// GetReferralQR отдает PNG с QR-кодом реферальной ссылки клиента.
func (h *handler) GetReferralQR(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "Некорректный ID клиента")
		return
	}
	if _, err := h.deps.Dashboard.GetClient(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Не удалось получить клиента")
		return
	}

	baseURL := ""
	if h.deps.Config != nil {
		baseURL = h.deps.Config.ReferralBaseURL
	}
	png, err := utils.GenerateQRCode(baseURL, id)
	if err != nil {
		writeServiceError(w, r, err, "Не удалось сгенерировать QR-код")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *handler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.deps.Dashboard.ListServices(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Не удалось получить список услуг")
		return
	}
	writeJSONSuccess(w, "Услуги получены", services)
}

// AddServiceRequest - тело запроса на добавление услуги.
type AddServiceRequest struct {
	Title string `json:"title"`
	Price string `json:"price"`
}

func (h *handler) AddService(w http.ResponseWriter, r *http.Request) {
	var req AddServiceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	service, err := h.deps.Dashboard.AddService(r.Context(), req.Title, req.Price)
	if err != nil {
		writeServiceError(w, r, err, "Не удалось добавить услугу")
		return
	}
	writeJSONSuccess(w, "Услуга добавлена", service)
}
