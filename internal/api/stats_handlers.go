package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"marketing/internal/constants"
	"marketing/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var errUnknownTable = errors.New("неизвестная таблица для выгрузки")

func (h *handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.deps.Dashboard.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Не удалось получить аналитику")
		return
	}
	writeJSONSuccess(w, "Аналитика получена", summary)
}

// buildExport формирует книгу Excel для таблицы из белого списка.
func (h *handler) buildExport(ctx context.Context, table string) ([]byte, error) {
	var buf bytes.Buffer
	d := h.deps.Dashboard

	switch table {
	case constants.TABLE_CLIENTS:
		rows, err := d.ListClients(ctx)
		if err != nil {
			return nil, err
		}
		if err := export.WriteClients(&buf, rows); err != nil {
			return nil, err
		}
	case constants.TABLE_SERVICES:
		rows, err := d.ListServices(ctx)
		if err != nil {
			return nil, err
		}
		if err := export.WriteServices(&buf, rows); err != nil {
			return nil, err
		}
	case constants.TABLE_ORDERS:
		rows, err := d.ListOrders(ctx)
		if err != nil {
			return nil, err
		}
		if err := export.WriteOrders(&buf, rows); err != nil {
			return nil, err
		}
	case constants.TABLE_AD_STATS:
		rows, err := d.ListCampaigns(ctx)
		if err != nil {
			return nil, err
		}
		if err := export.WriteCampaigns(&buf, rows); err != nil {
			return nil, err
		}
	default:
		return nil, errUnknownTable
	}
	return buf.Bytes(), nil
}

// ExportTable отдает выгрузку таблицы в формате .xlsx.
func (h *handler) ExportTable(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	data, err := h.buildExport(r.Context(), table)
	if errors.Is(err, errUnknownTable) {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "Не удалось сформировать выгрузку")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, table))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// SendExport отправляет выгрузку таблицы владельцу в Telegram.
func (h *handler) SendExport(w http.ResponseWriter, r *http.Request) {
	if h.deps.Reports == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Отправка отчетов в Telegram не настроена")
		return
	}

	table := chi.URLParam(r, "table")
	data, err := h.buildExport(r.Context(), table)
	if errors.Is(err, errUnknownTable) {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "Не удалось сформировать выгрузку")
		return
	}

	filename := table + ".xlsx"
	if err := h.deps.Reports.SendReport(r.Context(), filename, data, "Выгрузка: "+table); err != nil {
		writeServiceError(w, r, err, "Не удалось отправить отчет в Telegram")
		return
	}
	writeJSONSuccess(w, "Отчет отправлен", map[string]string{"file": filename})
}
