package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"marketing/internal/config"
	"marketing/internal/dashboard"
	"marketing/internal/db"
)

type fakeReports struct {
	filename string
	data     []byte
	err      error
}

func (f *fakeReports) SendReport(_ context.Context, filename string, data []byte, _ string) error {
	f.filename = filename
	f.data = data
	return f.err
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T, reports ReportSender) *httptest.Server {
	t.Helper()
	clock := func() time.Time { return time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC) }
	store, err := db.Open(context.Background(), db.DriverSQLite, filepath.Join(t.TempDir(), "api.db"), db.WithClock(clock))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	r := chi.NewRouter()
	SetupRoutes(r, ApiDependencies{
		Dashboard: dashboard.New(store, dashboard.WithClock(clock)),
		Config:    &config.Config{ReferralBaseURL: "https://example.com/?ref="},
		Reports:   reports,
		Health:    store.Ping,
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", env.Status)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	srv := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/health", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "req-42")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "req-42", resp.Header.Get(RequestIDHeader))
}

func TestClientOrderFlow(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/clients", map[string]interface{}{
		"name": "Иван Петров", "email": "ivan@example.com",
		"category": "Физическое лицо", "region": "Москва",
		"source": "Реклама", "ad_channel": "VK",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	var client struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &client))

	resp, env = doJSON(t, http.MethodPost, srv.URL+"/api/services", map[string]string{"title": "Создание лонгрида", "price": "200"})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	var service struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &service))

	resp, env = doJSON(t, http.MethodPost, srv.URL+"/api/orders", map[string]int64{"client_id": client.ID, "service_id": service.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	var first struct {
		ID              int64   `json:"id"`
		DiscountApplied float64 `json:"discount_applied"`
		FinalPrice      float64 `json:"final_price"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &first))
	assert.Equal(t, 0.0, first.DiscountApplied)
	assert.Equal(t, 200.0, first.FinalPrice)

	resp, env = doJSON(t, http.MethodPost, srv.URL+"/api/orders", map[string]int64{"client_id": client.ID, "service_id": service.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	var second struct {
		DiscountApplied float64 `json:"discount_applied"`
		FinalPrice      float64 `json:"final_price"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &second))
	assert.Equal(t, 10.0, second.DiscountApplied)
	assert.Equal(t, 180.0, second.FinalPrice)

	resp, env = doJSON(t, http.MethodPost, srv.URL+"/api/orders/"+itoa(first.ID)+"/complete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	var result struct {
		AttributedChannel string `json:"attributed_channel"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "VK", result.AttributedChannel)

	resp, env = doJSON(t, http.MethodGet, srv.URL+"/api/ad-stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats []struct {
		Channel    string   `json:"channel"`
		Revenue    float64  `json:"revenue"`
		Efficiency *float64 `json:"efficiency"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	require.Len(t, stats, 1)
	assert.Equal(t, "VK", stats[0].Channel)
	assert.Equal(t, 200.0, stats[0].Revenue)
	require.NotNil(t, stats[0].Efficiency)
	assert.Equal(t, 0.0, *stats[0].Efficiency)

	resp, env = doJSON(t, http.MethodGet, srv.URL+"/api/clients/"+itoa(client.ID)+"/recommendation", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), "Индивидуальная консультация (письменно)")

	resp, env = doJSON(t, http.MethodGet, srv.URL+"/api/stats/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary struct {
		TotalClients  int `json:"total_clients"`
		TotalOrders   int `json:"total_orders"`
		RepeatClients int `json:"repeat_clients"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 1, summary.TotalClients)
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 1, summary.RepeatClients)
}

func TestRegisterClient_Validation(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/clients", map[string]string{"name": "  ", "email": "a@b.c"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", env.Status)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/clients", strings.NewReader("{not json"))
	require.NoError(t, err)
	raw, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	raw.Body.Close()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
}

func TestNotFoundMapping(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/orders/999/complete", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/clients/999/recommendation", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/clients/abc/recommendation", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/orders", map[string]int64{"client_id": 999, "service_id": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddCampaign_BadDate(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/ad-stats", map[string]interface{}{"channel": "VK", "spend": 100, "date": "14.10.2026"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", env.Status)

	resp, env = doJSON(t, http.MethodPost, srv.URL+"/api/ad-stats", map[string]interface{}{"channel": "VK", "spend": 100})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	var stat struct {
		Date       string   `json:"date"`
		Efficiency *float64 `json:"efficiency"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stat))
	assert.Equal(t, "2026-10-14", stat.Date)
	assert.Nil(t, stat.Efficiency, "нулевой доход дает неконечную эффективность, она сериализуется в null")

	resp, env = doJSON(t, http.MethodGet, srv.URL+"/api/ad-stats/channels", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `["VK"]`, string(env.Data))
}

func TestReferralQR(t *testing.T) {
	srv := newTestServer(t, nil)

	_, env := doJSON(t, http.MethodPost, srv.URL+"/api/clients", map[string]string{"name": "Ольга", "email": "olga@example.com"})
	var client struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &client))

	resp, err := http.Get(srv.URL + "/api/clients/" + itoa(client.ID) + "/referral-qr")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body.Bytes(), []byte("\x89PNG")))
}

func TestExportTable(t *testing.T) {
	srv := newTestServer(t, nil)
	doJSON(t, http.MethodPost, srv.URL+"/api/services", map[string]string{"title": "Создание лонгрида", "price": "200"})

	resp, err := http.Get(srv.URL + "/api/export/services.xlsx")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "services.xlsx")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Услуги")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Создание лонгрида", rows[1][1])

	unknown, err := http.Get(srv.URL + "/api/export/users.xlsx")
	require.NoError(t, err)
	unknown.Body.Close()
	assert.Equal(t, http.StatusNotFound, unknown.StatusCode)
}

func TestSendExport(t *testing.T) {
	resp, _ := doJSON(t, http.MethodPost, newTestServer(t, nil).URL+"/api/export/orders/send", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	reports := &fakeReports{}
	srv := newTestServer(t, reports)
	resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/export/orders/send", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	assert.Equal(t, "orders.xlsx", reports.filename)
	assert.NotEmpty(t, reports.data)

	reports.err = errors.New("telegram down")
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/export/orders/send", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
