package subject_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"multilingua/internal/handler/http/subject"
	"multilingua/internal/infra/adapter/persistence/memory"
	"multilingua/internal/infra/seed"
	subjUC "multilingua/internal/usecase/subject"
)

func seededService(t *testing.T) subjUC.Service {
	t.Helper()
	store := memory.NewStoreFromDataset(seed.MustLoad())
	return subjUC.Service{Repo: memory.NewSubjectRepo(store)}
}

func TestListHandler(t *testing.T) {
	handler := subject.ListHandler{Svc: seededService(t)}

	req := httptest.NewRequest(http.MethodGet, "/subjects", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var result []subject.DTO
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result) != 6 {
		t.Fatalf("len = %d, want 6", len(result))
	}

	counts := map[string]int{}
	for _, dto := range result {
		counts[dto.Slug] = dto.ArticleCount
	}
	want := map[string]int{
		"technology":   1,
		"science":      0,
		"environment":  1,
		"health":       1,
		"arts-culture": 0,
		"travel":       1,
	}
	for slug, n := range want {
		if counts[slug] != n {
			t.Errorf("articleCount[%s] = %d, want %d", slug, counts[slug], n)
		}
	}
}

func TestGetHandler(t *testing.T) {
	handler := subject.GetHandler{Svc: seededService(t)}

	req := httptest.NewRequest(http.MethodGet, "/subjects/technology", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var dto subject.DTO
	if err := json.NewDecoder(rr.Body).Decode(&dto); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if dto.Name != "Technology" || dto.Icon != "ri-computer-line" {
		t.Errorf("dto = %+v, want the technology subject", dto)
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	handler := subject.GetHandler{Svc: seededService(t)}

	req := httptest.NewRequest(http.MethodGet, "/subjects/no-such-subject", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestGetHandler_InvalidSlug(t *testing.T) {
	handler := subject.GetHandler{Svc: seededService(t)}

	req := httptest.NewRequest(http.MethodGet, "/subjects/Not%20A%20Slug", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCreateHandler(t *testing.T) {
	handler := subject.CreateHandler{Svc: seededService(t)}

	body := `{"name": "Sports", "slug": "sports", "icon": "ri-football-line"}`
	req := httptest.NewRequest(http.MethodPost, "/subjects", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d (body: %s)", rr.Code, http.StatusCreated, rr.Body.String())
	}

	var dto subject.DTO
	if err := json.NewDecoder(rr.Body).Decode(&dto); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if dto.ID != 7 {
		t.Errorf("ID = %d, want 7", dto.ID)
	}
	if dto.ArticleCount != 0 {
		t.Errorf("ArticleCount = %d, want 0", dto.ArticleCount)
	}
}

func TestCreateHandler_MissingName(t *testing.T) {
	handler := subject.CreateHandler{Svc: seededService(t)}

	req := httptest.NewRequest(http.MethodPost, "/subjects", strings.NewReader(`{"slug": "anon"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCreateHandler_InvalidBody(t *testing.T) {
	handler := subject.CreateHandler{Svc: seededService(t)}

	req := httptest.NewRequest(http.MethodPost, "/subjects", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
