package resources

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New().RegisterRoutes(r)
	return r
}

func get(t *testing.T, r http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var body map[string]any
	if resp.Code == http.StatusOK {
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return resp, body
}

func TestHelplines(t *testing.T) {
	resp, body := get(t, setupRouter(), "/resources/helplines")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	helplines, _ := body["helplines"].([]any)
	if len(helplines) == 0 {
		t.Error("expected at least one helpline")
	}
	if body["emergency"] != "112" {
		t.Errorf("expected emergency number, got %v", body["emergency"])
	}
}

func TestSelfHelpCategoryFilter(t *testing.T) {
	resp, body := get(t, setupRouter(), "/resources/self-help?category=anxiety")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	selfHelp, _ := body["selfHelp"].([]any)
	if len(selfHelp) == 0 {
		t.Fatal("expected anxiety exercises in the catalogue")
	}
	for _, item := range selfHelp {
		exercise, _ := item.(map[string]any)
		if exercise["category"] != "Anxiety Management" {
			t.Errorf("expected only anxiety exercises, got %v", exercise["category"])
		}
	}
	categories, _ := body["categories"].([]any)
	if len(categories) == 0 {
		t.Error("expected categories to always list the full set")
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	resp, _ := get(t, setupRouter(), "/resources/search")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without query, got %d", resp.Code)
	}
}

func TestSearchMatchesHelplines(t *testing.T) {
	resp, body := get(t, setupRouter(), "/resources/search?q=aasra")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body["totalResults"] == float64(0) {
		t.Error("expected at least one result for a known helpline")
	}
}

func TestEmergency(t *testing.T) {
	resp, body := get(t, setupRouter(), "/resources/emergency")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	emergency, _ := body["emergency"].(map[string]any)
	if emergency["number"] != "112" {
		t.Errorf("expected emergency number 112, got %v", emergency["number"])
	}
	crisis, _ := body["crisis"].([]any)
	if len(crisis) == 0 {
		t.Error("expected 24/7 helplines in crisis list")
	}
}
