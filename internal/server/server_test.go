package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordspin/pkg/cache"
	"github.com/matzehuels/wordspin/pkg/errors"
	"github.com/matzehuels/wordspin/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil, logger)
	srv := New(Config{Runner: runner, Logger: logger})
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if id := resp.Header.Get("X-Request-Id"); id == "" {
		t.Error("response should carry a request ID")
	}
}

func TestGenerate(t *testing.T) {
	ts := newTestServer(t)

	body, _ := json.Marshal(map[string]any{
		"text":    "gopher gopher gopher cloud cloud spiral words layout canvas center",
		"formats": []string{"svg", "json"},
	})
	resp, err := http.Post(ts.URL+"/v1/clouds", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /v1/clouds: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.TextHash == "" {
		t.Error("text_hash should be set")
	}
	if !bytes.Contains(out.Artifacts["svg"], []byte("<svg")) {
		t.Error("svg artifact missing or invalid")
	}
	if out.Report.PlacedWords == 0 {
		t.Error("report should count placed words")
	}
}

func TestGenerate_EmptyText(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/clouds", "application/json",
		bytes.NewReader([]byte(`{"text": ""}`)))
	if err != nil {
		t.Fatalf("POST /v1/clouds: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}

	var out errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if out.Code == "" {
		t.Error("error response should carry a code")
	}
}

func TestGenerate_UnknownTheme(t *testing.T) {
	ts := newTestServer(t)

	body, _ := json.Marshal(map[string]any{
		"text":  "hello world hello world hello",
		"theme": "nonexistent",
	})
	resp, err := http.Post(ts.URL+"/v1/clouds", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /v1/clouds: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestGenerate_MalformedBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/clouds", "application/json",
		bytes.NewReader([]byte(`{not json`)))
	if err != nil {
		t.Fatalf("POST /v1/clouds: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestThemes(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/themes")
	if err != nil {
		t.Fatalf("GET /v1/themes: %v", err)
	}
	defer resp.Body.Close()

	var themes []themeResponse
	if err := json.NewDecoder(resp.Body).Decode(&themes); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(themes) == 0 {
		t.Fatal("expected at least one theme")
	}
	for _, th := range themes {
		if th.Name == "" || th.Background == "" || len(th.Colors) == 0 {
			t.Errorf("incomplete theme entry: %+v", th)
		}
	}
}

func TestListRuns_WithoutHistory(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/clouds")
	if err != nil {
		t.Fatalf("GET /v1/clouds: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotImplemented {
		t.Errorf("status = %d, want 501", resp.StatusCode)
	}
}

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidInput, 422},
		{errors.ErrCodeInvalidTheme, 422},
		{errors.ErrCodeEmptyPalette, 422},
		{errors.ErrCodeNotFound, 404},
		{errors.ErrCodeUnsupported, 501},
		{errors.ErrCodeInternal, 500},
		{errors.ErrCodeMeasurement, 500},
	}
	for _, tt := range tests {
		if got := statusForCode(tt.code); got != tt.want {
			t.Errorf("statusForCode(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
