package pastes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"pastebin-backend/internal/bootstrap"
	"pastebin-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"*"},
		BlobStoreType:   "local",
		UploadDir:       t.TempDir(),
		MaxUploadBytes:  1 << 20,
		Env:             "dev",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func createPaste(t *testing.T, router *gin.Engine, title, content string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"title": title, "content": content})
	req := httptest.NewRequest(http.MethodPost, "/api/pastes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected id in create response")
	}
	return created.ID
}

func TestCreateAndGetPaste(t *testing.T) {
	router := newTestRouter(t)

	id := createPaste(t, router, "  Hello  ", "paste body")

	req := httptest.NewRequest(http.MethodGet, "/api/pastes/"+id, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var paste struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&paste); err != nil {
		t.Fatalf("decode paste: %v", err)
	}
	if paste.Title != "Hello" {
		t.Fatalf("expected trimmed title Hello, got %q", paste.Title)
	}
	if paste.Content != "paste body" {
		t.Fatalf("expected content round trip, got %q", paste.Content)
	}
}

func TestCreatePasteRejectsEmptyContent(t *testing.T) {
	router := newTestRouter(t)

	for _, content := range []string{"", "   "} {
		body, _ := json.Marshal(map[string]string{"title": "t", "content": content})
		req := httptest.NewRequest(http.MethodPost, "/api/pastes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400 for content %q, got %d", content, resp.Code)
		}
	}
}

func TestGetUnknownPasteReturns404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/pastes/zzzzzzzz", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestRecentPastesHonorsLimit(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 5; i++ {
		createPaste(t, router, fmt.Sprintf("paste %d", i), "content")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/pastes?limit=2", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var list []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 pastes, got %d", len(list))
	}
}
