package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/config"
)

type fakeTeam struct {
	lastPrompt       string
	lastAnalysisType string
	response         string
	err              error
}

func (f *fakeTeam) Run(ctx context.Context, prompt, analysisType string) (string, error) {
	f.lastPrompt = prompt
	f.lastAnalysisType = analysisType
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeTeam) RunPortfolio(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeTeam) MemberCount() int { return 6 }

func newTestServer(team TeamRunner) *Server {
	cfg := &config.Config{
		LLMProvider:  "openai",
		OpenAIAPIKey: "test-key",
	}
	return New(cfg, team)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	out := map[string]interface{}{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return w.Code, out
}

func TestQueryReturnsResponseAndMetadata(t *testing.T) {
	team := &fakeTeam{response: "detailed analysis"}
	s := newTestServer(team)
	r := s.Router()

	code, body := doJSON(t, r, http.MethodPost, "/query",
		`{"question":"What about AAPL?","analysis_type":"quick","symbols":["AAPL"],"timeframe":"1mo"}`)

	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body["response"] != "detailed analysis" {
		t.Fatalf("response = %v", body["response"])
	}
	meta := body["metadata"].(map[string]interface{})
	if meta["analysis_type"] != "quick" {
		t.Fatalf("analysis_type = %v", meta["analysis_type"])
	}
	if meta["query_id"].(float64) != 1 {
		t.Fatalf("query_id = %v", meta["query_id"])
	}
	symbols := meta["symbols_analyzed"].([]interface{})
	if len(symbols) != 1 || symbols[0] != "AAPL" {
		t.Fatalf("symbols_analyzed = %v", symbols)
	}
	if team.lastAnalysisType != "quick" {
		t.Fatalf("team got analysis type %q", team.lastAnalysisType)
	}
	if !strings.HasPrefix(team.lastPrompt, "Quick Analysis Request: What about AAPL?") {
		t.Fatalf("team got prompt:\n%s", team.lastPrompt)
	}
}

func TestQueryDefaultsAndFallbackPrompt(t *testing.T) {
	team := &fakeTeam{response: "ok"}
	s := newTestServer(team)
	r := s.Router()

	_, body := doJSON(t, r, http.MethodPost, "/query", `{"question":"How are markets?"}`)
	if _, hasErr := body["error"]; hasErr {
		t.Fatalf("unexpected error: %v", body["error"])
	}

	meta := body["metadata"].(map[string]interface{})
	if meta["analysis_type"] != "comprehensive" {
		t.Fatalf("default analysis_type = %v", meta["analysis_type"])
	}
	if meta["timeframe"] != "1y" {
		t.Fatalf("default timeframe = %v", meta["timeframe"])
	}
	if !strings.Contains(team.lastPrompt, "Symbols: General market analysis") {
		t.Fatalf("missing general market fallback:\n%s", team.lastPrompt)
	}
}

func TestQueryWithoutAPIKey(t *testing.T) {
	s := New(&config.Config{LLMProvider: "openai"}, nil)
	r := s.Router()

	code, body := doJSON(t, r, http.MethodPost, "/query", `{"question":"q"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even on failure", code)
	}
	if body["error"] != "OpenAI API key not configured" {
		t.Fatalf("error = %v", body["error"])
	}

	// The failed query must not be journaled.
	_, hist := doJSON(t, r, http.MethodGet, "/history", "")
	if entries := hist["history"].([]interface{}); len(entries) != 0 {
		t.Fatalf("history = %v", entries)
	}
}

func TestQueryTeamErrorKeeps200Contract(t *testing.T) {
	team := &fakeTeam{err: fmt.Errorf("model unavailable")}
	s := newTestServer(team)
	r := s.Router()

	code, body := doJSON(t, r, http.MethodPost, "/query", `{"question":"q"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body["error"] != "model unavailable" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestHistoryReturnsLastTen(t *testing.T) {
	team := &fakeTeam{response: "ok"}
	s := newTestServer(team)
	r := s.Router()

	for i := 0; i < 12; i++ {
		doJSON(t, r, http.MethodPost, "/query",
			fmt.Sprintf(`{"question":"q%d"}`, i))
	}

	_, body := doJSON(t, r, http.MethodGet, "/history", "")
	entries := body["history"].([]interface{})
	if len(entries) != 10 {
		t.Fatalf("history length = %d, want 10", len(entries))
	}
	first := entries[0].(map[string]interface{})
	last := entries[9].(map[string]interface{})
	if first["question"] != "q2" || last["question"] != "q11" {
		t.Fatalf("window = %v .. %v", first["question"], last["question"])
	}
}

func TestPortfolioDoesNotTouchHistory(t *testing.T) {
	team := &fakeTeam{response: "portfolio advice"}
	s := newTestServer(team)
	r := s.Router()

	_, body := doJSON(t, r, http.MethodPost, "/portfolio",
		`{"symbols":["AAPL","TSLA"],"risk_tolerance":"aggressive"}`)
	if body["response"] != "portfolio advice" {
		t.Fatalf("response = %v", body["response"])
	}
	if _, hasMeta := body["metadata"]; hasMeta {
		t.Fatal("portfolio response must not carry metadata")
	}
	if !strings.Contains(team.lastPrompt, "Risk Tolerance: aggressive") {
		t.Fatalf("prompt = %s", team.lastPrompt)
	}

	_, hist := doJSON(t, r, http.MethodGet, "/history", "")
	if entries := hist["history"].([]interface{}); len(entries) != 0 {
		t.Fatalf("portfolio run leaked into history: %v", entries)
	}
}

func TestAlertsCreateAndList(t *testing.T) {
	s := newTestServer(&fakeTeam{})
	r := s.Router()

	_, body := doJSON(t, r, http.MethodPost, "/alerts",
		`{"symbol":"AAPL","condition":"above","threshold":200.5}`)
	if body["message"] != "Alert created successfully" {
		t.Fatalf("message = %v", body["message"])
	}
	alert := body["alert"].(map[string]interface{})
	if alert["symbol"] != "AAPL" || alert["active"] != true {
		t.Fatalf("alert = %v", alert)
	}

	// Empty body still creates an alert with zero-value defaults.
	_, body = doJSON(t, r, http.MethodPost, "/alerts", `{}`)
	alert = body["alert"].(map[string]interface{})
	if alert["symbol"] != "" || alert["condition"] != "" || alert["threshold"].(float64) != 0 {
		t.Fatalf("default alert = %v", alert)
	}

	_, list := doJSON(t, r, http.MethodGet, "/alerts", "")
	alerts := list["alerts"].([]interface{})
	if len(alerts) != 2 {
		t.Fatalf("alerts = %v", alerts)
	}
}

func TestHealthAndTestProbes(t *testing.T) {
	s := newTestServer(&fakeTeam{})
	r := s.Router()

	_, health := doJSON(t, r, http.MethodGet, "/health", "")
	if health["status"] != "healthy" {
		t.Fatalf("health = %v", health)
	}
	if health["agents_ready"].(float64) != 6 {
		t.Fatalf("agents_ready = %v", health["agents_ready"])
	}
	if health["api_key_configured"] != true {
		t.Fatal("api_key_configured should be true")
	}

	_, probe := doJSON(t, r, http.MethodGet, "/test", "")
	if probe["system_status"] != "operational" {
		t.Fatalf("probe = %v", probe)
	}
	if probe["api_key_length"].(float64) != float64(len("test-key")) {
		t.Fatalf("api_key_length = %v", probe["api_key_length"])
	}
}

func TestRootListsEndpoints(t *testing.T) {
	s := newTestServer(&fakeTeam{})
	r := s.Router()

	_, body := doJSON(t, r, http.MethodGet, "/", "")
	if body["version"] != "2.0" {
		t.Fatalf("version = %v", body["version"])
	}
	endpoints := body["endpoints"].(map[string]interface{})
	if endpoints["/query"] != "Main analysis endpoint" {
		t.Fatalf("endpoints = %v", endpoints)
	}
}
