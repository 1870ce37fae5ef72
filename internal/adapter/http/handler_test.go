package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestHealth_ReportsServiceAndTimestamp(t *testing.T) {
	e := echo.New()
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	before := time.Now().UTC()
	if err := h.Health(c); err != nil {
		t.Fatalf("Health error: %v", err)
	}
	after := time.Now().UTC()

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		t.Fatalf("content type = %q, want application/json", ct)
	}

	var body struct {
		Service string `json:"service"`
		Status  string `json:"status"`
		Time    string `json:"time"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v (raw=%s)", err, rec.Body.String())
	}
	if body.Service != "investhub-backend" {
		t.Fatalf("service = %q, want investhub-backend", body.Service)
	}
	if body.Status != "ok" {
		t.Fatalf("status = %q, want ok", body.Status)
	}

	ts, err := time.Parse(time.RFC3339Nano, body.Time)
	if err != nil {
		t.Fatalf("time not RFC3339Nano: %v (%q)", err, body.Time)
	}
	if ts.Before(before.Add(-time.Second)) || ts.After(after.Add(time.Second)) {
		t.Fatalf("timestamp %v outside [%v, %v]", ts, before, after)
	}
}
