package chat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/bootstrap"
	"portfolio-backend/internal/chat"
	"portfolio-backend/internal/shared/config"
)

type fakeLLM struct {
	reply string
}

func (f *fakeLLM) Complete(ctx context.Context, system, user string) (string, error) {
	return f.reply, nil
}

func buildApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:             "0",
		Env:              "dev",
		CORSAllowOrigins: []string{"http://localhost:5173"},
		MongoDatabase:    "portfolio_db",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func TestChatNotConfigured(t *testing.T) {
	app := buildApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "API key") {
		t.Fatalf("expected missing API key detail, got %s", resp.Body.String())
	}
}

func TestChatSuccess(t *testing.T) {
	app := buildApp(t)
	app.ChatService.LLM = &fakeLLM{reply: "Hello from the assistant"}

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "who are you?"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var got struct {
		Response  string `json:"response"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Response != "Hello from the assistant" {
		t.Fatalf("expected fake reply, got %q", got.Response)
	}
	if _, err := time.Parse(time.RFC3339, got.Timestamp); err != nil {
		t.Fatalf("expected RFC3339 timestamp, got %q: %v", got.Timestamp, err)
	}

	// The exchange was recorded.
	reqHist := httptest.NewRequest(http.MethodGet, "/api/chat/history", nil)
	respHist := httptest.NewRecorder()
	app.Router.ServeHTTP(respHist, reqHist)

	if respHist.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respHist.Code)
	}
	var hist struct {
		Chats []struct {
			ID          string `json:"_id"`
			UserMessage string `json:"user_message"`
			AIResponse  string `json:"ai_response"`
		} `json:"chats"`
	}
	if err := json.NewDecoder(respHist.Body).Decode(&hist); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(hist.Chats) != 1 {
		t.Fatalf("expected 1 recorded exchange, got %d", len(hist.Chats))
	}
	if hist.Chats[0].UserMessage != "who are you?" || hist.Chats[0].AIResponse != "Hello from the assistant" {
		t.Fatalf("unexpected recorded exchange: %+v", hist.Chats[0])
	}
	if hist.Chats[0].ID == "" {
		t.Fatalf("expected stringified id, got empty")
	}
}

func TestChatHistoryLimit(t *testing.T) {
	app := buildApp(t)

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		ex := chat.Exchange{
			UserMessage: "msg",
			AIResponse:  "resp",
			Timestamp:   base.Add(time.Duration(i) * time.Minute).Format(time.RFC3339),
		}
		if err := app.ChatRepo.Insert(context.Background(), ex); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history?limit=3", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var got struct {
		Chats []struct {
			Timestamp string `json:"timestamp"`
		} `json:"chats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(got.Chats) != 3 {
		t.Fatalf("expected 3 exchanges, got %d", len(got.Chats))
	}
	for i := 1; i < len(got.Chats); i++ {
		if got.Chats[i-1].Timestamp < got.Chats[i].Timestamp {
			t.Fatalf("expected timestamps descending, got %q before %q", got.Chats[i-1].Timestamp, got.Chats[i].Timestamp)
		}
	}
}

func TestChatValidation(t *testing.T) {
	app := buildApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}
