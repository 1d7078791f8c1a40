package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mwagner82/parrotbox/pkg/rotation"
)

func queueRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rotation.Init(t.TempDir())

	h := &QueueHandler{}
	router := gin.New()
	router.GET("/api/queue", h.List)
	router.POST("/api/queue", h.Add)
	return router
}

func TestQueueAddAndList(t *testing.T) {
	router := queueRouter(t)

	body := `{"text": "Lunch is ready", "voice": "Amy"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/queue", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created rotation.Item
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if created.Type != rotation.TypePhrase {
		t.Errorf("Expected default type phrase, got %q", created.Type)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/queue", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var items []rotation.Item
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("Failed to decode queue: %v", err)
	}
	if len(items) != 1 || items[0].Text != "Lunch is ready" || items[0].Voice != "Amy" {
		t.Errorf("Unexpected queue contents: %+v", items)
	}
}

func TestQueueListEmpty(t *testing.T) {
	router := queueRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/queue", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("Expected empty array, got %s", w.Body.String())
	}
}

func TestQueueAddValidation(t *testing.T) {
	router := queueRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing text", `{"voice": "Amy"}`},
		{"bad type", `{"text": "hi", "type": "video"}`},
		{"not json", `not json`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/queue", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
