package assessments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAssessmentRouter(svc *Service, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userId", userID)
		}
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postAssessment(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

type errorEnvelope struct {
	Error struct {
		Code    string       `json:"code"`
		Details []FieldIssue `json:"details"`
	} `json:"error"`
}

func TestSubmitReturnsCreatedWithRoadmap(t *testing.T) {
	svc, _, _ := newTestStack()
	router := newAssessmentRouter(svc, "guest:g1")

	resp := postAssessment(router, `{"status":"civilian","amputationType":"upper-limb","amputationLevel":"below-elbow","currentStage":"rehabilitation","region":"lviv"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload SubmitResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Assessment.Answers.Region != "lviv" {
		t.Fatalf("unexpected answers: %+v", payload.Assessment.Answers)
	}
	if len(payload.Roadmap.Roadmap.Sections) == 0 {
		t.Fatalf("expected roadmap sections")
	}
	if payload.Roadmap.CatalogVersion != "test-1" {
		t.Fatalf("unexpected catalog version %q", payload.Roadmap.CatalogVersion)
	}
}

func TestSubmitBindingErrorsListFields(t *testing.T) {
	svc, _, _ := newTestStack()
	router := newAssessmentRouter(svc, "guest:g1")

	resp := postAssessment(router, `{"status":"veteran","amputationType":"upper-limb","currentStage":"rehabilitation"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var env errorEnvelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Code != "validation_error" {
		t.Fatalf("unexpected code %q", env.Error.Code)
	}
	fields := map[string]string{}
	for _, issue := range env.Error.Details {
		fields[issue.Field] = issue.Issue
	}
	if fields["status"] != "must be one of military, civilian" {
		t.Fatalf("unexpected status issue: %v", fields)
	}
	if fields["amputationLevel"] != "required" {
		t.Fatalf("expected amputationLevel required, got %v", fields)
	}
}

func TestSubmitRejectsLevelFromOtherType(t *testing.T) {
	svc, _, _ := newTestStack()
	router := newAssessmentRouter(svc, "guest:g1")

	resp := postAssessment(router, `{"status":"civilian","amputationType":"upper-limb","amputationLevel":"above-knee","currentStage":"rehabilitation"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var env errorEnvelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Error.Details) != 1 || env.Error.Details[0].Field != "amputationLevel" {
		t.Fatalf("unexpected details: %+v", env.Error.Details)
	}
}

func TestSubmitMalformedBody(t *testing.T) {
	svc, _, _ := newTestStack()
	router := newAssessmentRouter(svc, "guest:g1")

	resp := postAssessment(router, `{"status":`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "malformed JSON") {
		t.Fatalf("expected malformed JSON issue, got %s", resp.Body.String())
	}
}

func TestCurrentAssessment(t *testing.T) {
	svc, _, _ := newTestStack()
	router := newAssessmentRouter(svc, "guest:g1")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/assessments/current", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before submit, got %d", resp.Code)
	}

	postAssessment(router, `{"status":"military","amputationType":"lower-limb","amputationLevel":"below-knee","currentStage":"prosthetic-fitting"}`)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/assessments/current", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"currentStage":"prosthetic-fitting"`) {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestSchemaDescribesRequest(t *testing.T) {
	svc, _, _ := newTestStack()
	router := newAssessmentRouter(svc, "")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/assessments/schema", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var doc struct {
		Type                 string                     `json:"type"`
		Required             []string                   `json:"required"`
		AdditionalProperties *bool                      `json:"additionalProperties"`
		Properties           map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Type != "object" {
		t.Fatalf("expected object schema, got %q", doc.Type)
	}
	if doc.AdditionalProperties == nil || *doc.AdditionalProperties {
		t.Fatalf("expected additionalProperties=false")
	}
	required := strings.Join(doc.Required, ",")
	for _, want := range []string{"status", "amputationType", "amputationLevel", "currentStage"} {
		if !strings.Contains(required, want) {
			t.Fatalf("expected %s to be required, got %v", want, doc.Required)
		}
	}
	if strings.Contains(required, "region") {
		t.Fatalf("region should be optional")
	}
	if !strings.Contains(string(doc.Properties["currentStage"]), "community-reintegration") {
		t.Fatalf("expected stage enum, got %s", doc.Properties["currentStage"])
	}
}
