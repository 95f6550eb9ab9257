package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/revisor-lab/revisor/pkg/controller/http"
	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/kv/memory"
	"github.com/revisor-lab/revisor/pkg/store"
	"github.com/revisor-lab/revisor/pkg/usecase"
)

func newTestServer(t *testing.T, noAuthn bool) *httpctrl.Server {
	t.Helper()
	backend := memory.New()
	stores := store.New(backend)

	cfg := usecase.DefaultAuthConfig()
	cfg.LoginDelay = 0
	uc := usecase.New(stores, backend, usecase.WithAuthConfig(cfg))

	return httpctrl.New(uc, httpctrl.WithNoAuthn(noAuthn))
}

func doJSON(t *testing.T, srv *httpctrl.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		gt.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t, false)

	rec := doJSON(t, srv, http.MethodGet, "/api/audits", nil)
	gt.Number(t, rec.Code).Equal(http.StatusUnauthorized)
}

func TestLoginFlow(t *testing.T) {
	srv := newTestServer(t, false)

	t.Run("bad credentials", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]string{
			"username": "admin", "password": "wrong",
		})
		gt.Number(t, rec.Code).Equal(http.StatusUnauthorized)
	})

	t.Run("successful login grants access", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]string{
			"username": "admin", "password": "123456",
		})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		cookies := rec.Result().Cookies()
		gt.Number(t, len(cookies)).Equal(1)
		gt.Value(t, cookies[0].Name).Equal("session_id")

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(cookies[0])
		meRec := httptest.NewRecorder()
		srv.ServeHTTP(meRec, req)
		gt.Number(t, meRec.Code).Equal(http.StatusOK)
		gt.Value(t, strings.Contains(meRec.Body.String(), `"admin"`)).Equal(true)
	})
}

func TestAuditTypeEndpoints(t *testing.T) {
	srv := newTestServer(t, true)

	t.Run("list seeded types", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/audit-types", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var listed []model.AuditType
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		gt.Number(t, len(listed)).Equal(6)
	})

	t.Run("create and update", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/audit-types", map[string]any{
			"name": "Compliance", "color": "#ff8800", "active": true,
		})
		gt.Number(t, rec.Code).Equal(http.StatusCreated)

		var created model.AuditType
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		gt.Number(t, created.ID).Equal(7)

		rec = doJSON(t, srv, http.MethodPut, "/api/audit-types/7", map[string]any{
			"name": "Regulatory Compliance",
		})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var updated model.AuditType
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		gt.Value(t, updated.Name).Equal("Regulatory Compliance")
		gt.Value(t, updated.Color).Equal("#ff8800")
	})

	t.Run("invalid payload", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/audit-types", map[string]any{
			"name": "Bad Color", "color": "red",
		})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/audit-types/999", nil)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)

		rec = doJSON(t, srv, http.MethodDelete, "/api/audit-types/999", nil)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestExecutionEndpoints(t *testing.T) {
	srv := newTestServer(t, true)

	t.Run("create derives name", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/executions", map[string]any{
			"auditId": 1,
		})
		gt.Number(t, rec.Code).Equal(http.StatusCreated)

		var created model.ChecklistExecution
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		gt.Value(t, created.Name).Equal("Execution - Information Security Audit")
	})

	t.Run("nested item toggle", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/executions/1/items/1/toggle", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var exec model.ChecklistExecution
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exec))
		gt.Value(t, exec.Items[0].Compliant).Equal(false)
	})

	t.Run("nested routes 404 on unknown execution", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/executions/999/items", map[string]any{
			"description": "orphan item",
		})
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestFindingsProjectionEndpoint(t *testing.T) {
	srv := newTestServer(t, true)

	rec := doJSON(t, srv, http.MethodGet, "/api/findings", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)

	var views []usecase.FindingView
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	gt.Number(t, len(views)).Equal(1)
	gt.Value(t, views[0].CompositeID).Equal("1-1")
}

func TestReportEndpoints(t *testing.T) {
	srv := newTestServer(t, true)

	t.Run("prefill from execution", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/reports/prefill/1", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, strings.Contains(rec.Body.String(), "Finding #1")).Equal(true)

		rec = doJSON(t, srv, http.MethodGet, "/api/reports/prefill/999", nil)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("export renders attachment", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/reports/1/export", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, strings.Contains(rec.Header().Get("Content-Disposition"), "attachment")).Equal(true)
		gt.Value(t, strings.Contains(rec.Body.String(), "Executive Summary")).Equal(true)
	})
}

func TestIngestEndpoint(t *testing.T) {
	srv := newTestServer(t, true)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("files", "findings.csv")
	gt.NoError(t, err)
	_, err = part.Write([]byte("id,severity\n1,HIGH\n"))
	gt.NoError(t, err)
	gt.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ingest", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Number(t, rec.Code).Equal(http.StatusOK)
	gt.Value(t, strings.Contains(rec.Body.String(), "findings.csv")).Equal(true)
}
