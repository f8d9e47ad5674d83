package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockMinimizer records the last call and returns canned answers.
type MockMinimizer struct {
	Err      error
	LastSrc  domain.Source
	LastFlag domain.Flags
	LastOp   string
}

func (m *MockMinimizer) answer(op string, src domain.Source, flags domain.Flags) (domain.Result, error) {
	m.LastOp, m.LastSrc, m.LastFlag = op, src, flags
	if m.Err != nil {
		return domain.Result{}, m.Err
	}
	return domain.Result{Source: src.Name, Text: op + ":" + src.Text}, nil
}

func (m *MockMinimizer) Minimize(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error) {
	return m.answer("single", src, flags)
}
func (m *MockMinimizer) MinimizeMany(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error) {
	return m.answer("batch", src, flags)
}
func (m *MockMinimizer) MinimizeAccepting(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error) {
	return m.answer("accepting", src, flags)
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestMinimizeEndpoints(t *testing.T) {
	mock := &MockMinimizer{}
	h := NewHandler(mock)

	tests := []struct {
		path string
		op   string
	}{
		{"/minimize", "single"},
		{"/minimize/batch", "batch"},
		{"/minimize/accepting", "accepting"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := post(t, h, tt.path, `{"equation": "a & b", "flags": {"exact": true, "no_redundancy": true}}`)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var res domain.Result
			require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
			assert.Equal(t, tt.op+":a & b", res.Text)
			assert.Equal(t, domain.StdinName, res.Source)
			assert.Equal(t, domain.Flags{Exact: true, NoRedundancy: true}, mock.LastFlag)
			assert.False(t, mock.LastSrc.IsFile(), "HTTP input is never a path")
		})
	}
}

func TestMinimize_Errors(t *testing.T) {
	t.Run("Invalid Body", func(t *testing.T) {
		w := post(t, NewHandler(&MockMinimizer{}), "/minimize", `{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Empty Equation", func(t *testing.T) {
		mock := &MockMinimizer{}
		w := post(t, NewHandler(mock), "/minimize", `{"equation": "   "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, mock.LastOp, "minimizer is not called")
	})

	t.Run("Tool Failure", func(t *testing.T) {
		mock := &MockMinimizer{Err: &domain.ToolError{Tool: "espresso", ExitCode: 1, Stdout: "so", Stderr: "se"}}
		w := post(t, NewHandler(mock), "/minimize", `{"equation": "f = a;"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "espresso", resp.Tool)
		assert.Equal(t, 1, resp.ExitCode)
		assert.Equal(t, "so", resp.Stdout)
		assert.Equal(t, "se", resp.Stderr)
	})

	t.Run("No Records", func(t *testing.T) {
		mock := &MockMinimizer{Err: domain.ErrNoAcceptingRecords}
		w := post(t, NewHandler(mock), "/minimize/accepting", `{"equation": "INIT = a;"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Other", func(t *testing.T) {
		mock := &MockMinimizer{Err: errors.New("exec: not found")}
		w := post(t, NewHandler(mock), "/minimize", `{"equation": "f = a;"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHealthAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "boolmin_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	h := NewHandler(&MockMinimizer{}, WithMetrics(reg))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "boolmin_test_total 1")

	w = httptest.NewRecorder()
	NewHandler(&MockMinimizer{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code, "metrics are opt-in")
}
