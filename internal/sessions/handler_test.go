package sessions

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupSessionRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &Service{Repo: NewMemoryRepo()}
	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router, svc
}

func seedSession(t *testing.T, svc *Service, workflow Workflow, mutate func(*Session)) Session {
	t.Helper()
	session, err := svc.Create(context.Background(), workflow)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if mutate != nil {
		mutate(&session)
		session.UpdatedAt = time.Now().UTC()
		if err := svc.Repo.Update(context.Background(), session); err != nil {
			t.Fatalf("update session: %v", err)
		}
	}
	return session
}

func TestCreateSession(t *testing.T) {
	router, _ := setupSessionRouter(t)

	body, _ := json.Marshal(map[string]string{"workflow": "resume"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created Response
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.SessionID == "" {
		t.Fatal("expected sessionId")
	}
	if created.State != string(StateIdle) {
		t.Fatalf("state = %q, want idle", created.State)
	}
}

func TestCreateSessionRejectsUnknownWorkflow(t *testing.T) {
	router, _ := setupSessionRouter(t)

	body, _ := json.Marshal(map[string]string{"workflow": "newsletter"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "validation_error") {
		t.Fatalf("expected validation_error code, got %s", resp.Body.String())
	}
}

func TestGetSessionNotFound(t *testing.T) {
	router, _ := setupSessionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/missing", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestGetSessionHidesArtifactsBeforeDone(t *testing.T) {
	router, svc := setupSessionRouter(t)
	session := seedSession(t, svc, WorkflowResume, func(s *Session) {
		s.State = StateSkillsReady
		s.Skills = []string{"Go", "SQL", "Docker"}
		s.Document = "should stay hidden"
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+session.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var got Response
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Document != "" {
		t.Fatal("document must not be exposed before done")
	}
	if len(got.Skills) != 3 {
		t.Fatalf("skills = %v", got.Skills)
	}
}

func TestResetSession(t *testing.T) {
	router, svc := setupSessionRouter(t)
	session := seedSession(t, svc, WorkflowResume, func(s *Session) {
		s.State = StateError
		s.LastError = "model unavailable"
		s.Skills = []string{"Go"}
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+session.ID+"/reset", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var got Response
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.State != string(StateCollecting) {
		t.Fatalf("state = %q, want collecting", got.State)
	}
	if got.Error != "" || len(got.Skills) != 0 {
		t.Fatal("reset should clear error and skills")
	}
}

func TestDeleteSession(t *testing.T) {
	router, svc := setupSessionRouter(t)
	session := seedSession(t, svc, WorkflowMealPlan, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/"+session.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+session.ID, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.Code)
	}
}

func TestExportRequiresDone(t *testing.T) {
	router, svc := setupSessionRouter(t)
	session := seedSession(t, svc, WorkflowResume, func(s *Session) {
		s.State = StateSkillsReady
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+session.ID+"/export", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "invalid_state") {
		t.Fatalf("expected invalid_state code, got %s", resp.Body.String())
	}
}

func TestExportReturnsPDF(t *testing.T) {
	router, svc := setupSessionRouter(t)
	session := seedSession(t, svc, WorkflowCoverLetter, func(s *Session) {
		s.State = StateDone
		s.Document = "Dear Hiring Manager,\n\nI am excited to apply."
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+session.ID+"/export", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	disposition := resp.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "tailored_cover_letter.pdf") {
		t.Fatalf("disposition = %q", disposition)
	}
	if !bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF-")) {
		t.Fatal("body is not a PDF stream")
	}
}

func TestExportHonorsLayoutOptions(t *testing.T) {
	router, svc := setupSessionRouter(t)
	session := seedSession(t, svc, WorkflowResume, func(s *Session) {
		s.State = StateDone
		s.Document = "Experienced engineer."
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+session.ID+"/export?pageSize=Letter&font=Times&fontSize=12", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("Times")) {
		t.Fatal("expected Times font in PDF output")
	}
}
