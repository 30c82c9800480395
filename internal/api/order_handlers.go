package api

import (
	"net/http"
)

// PlaceOrderRequest - тело запроса на создание заявки.
type PlaceOrderRequest struct {
	ClientID  int64 `json:"client_id"`
	ServiceID int64 `json:"service_id"`
}

func (h *handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.deps.Dashboard.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Не удалось получить список заявок")
		return
	}
	writeJSONSuccess(w, "Заявки получены", orders)
}

func (h *handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ClientID <= 0 || req.ServiceID <= 0 {
		writeJSONError(w, http.StatusBadRequest, "Необходимо выбрать клиента и услугу")
		return
	}
	order, err := h.deps.Dashboard.PlaceOrder(r.Context(), req.ClientID, req.ServiceID)
	if err != nil {
		writeServiceError(w, r, err, "Не удалось создать заявку")
		return
	}
	writeJSONSuccess(w, "Заявка создана", order)
}

func (h *handler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "Некорректный ID заявки")
		return
	}
	result, err := h.deps.Dashboard.CompleteOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Не удалось отметить заявку выполненной")
		return
	}
	writeJSONSuccess(w, "Заявка выполнена", result)
}
