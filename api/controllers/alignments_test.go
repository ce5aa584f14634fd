package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mikepica/Scorecard-app-sub001/internal/alignments"
	pkgerrors "github.com/mikepica/Scorecard-app-sub001/pkg/errors"
	"github.com/mikepica/Scorecard-app-sub001/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const retrievalFailureBody = `{"error":"Failed to fetch unaligned items"}`

type testAlignmentsService struct {
	mu      sync.Mutex
	calls   int
	fetchFn func(ctx context.Context) ([]alignments.Item, error)
}

func (s *testAlignmentsService) FetchUnalignedItems(ctx context.Context) ([]alignments.Item, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.fetchFn != nil {
		return s.fetchFn(ctx)
	}
	return nil, nil
}

func serveUnaligned(t *testing.T, svc alignments.Service, logg *logger.Logger) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/alignments/unaligned", nil)
	resp := httptest.NewRecorder()
	UnalignedItems(svc, logg)(resp, req)
	return resp
}

func discardLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestUnalignedItemsEmpty(t *testing.T) {
	svc := &testAlignmentsService{}

	resp := serveUnaligned(t, svc, discardLogger())

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"items":[]}`, resp.Body.String())
	assert.Equal(t, 1, svc.calls)
}

func TestUnalignedItemsReturnsSequenceUnchanged(t *testing.T) {
	svc := &testAlignmentsService{
		fetchFn: func(context.Context) ([]alignments.Item, error) {
			return []alignments.Item{{ID: "1"}, {ID: "2"}}, nil
		},
	}

	resp := serveUnaligned(t, svc, discardLogger())

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, `{"items":[{"id":"1"},{"id":"2"}]}`, strings.TrimSpace(resp.Body.String()))
}

func TestUnalignedItemsPreservesOrderAndFields(t *testing.T) {
	desc := "Automate intake"
	parent := "p-1"
	want := []alignments.Item{
		{ID: "c", Type: "goal", Name: "Zeta"},
		{ID: "a", Type: "functional_program", Name: "Alpha", Description: &desc, ParentID: &parent},
		{ID: "b"},
	}
	svc := &testAlignmentsService{
		fetchFn: func(context.Context) ([]alignments.Item, error) { return want, nil },
	}

	resp := serveUnaligned(t, svc, discardLogger())
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Items []alignments.Item `json:"items"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, want, body.Items)
}

func TestUnalignedItemsFailureCollapsesEveryError(t *testing.T) {
	cases := map[string]error{
		"connection refused": errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"),
		"postgres error":     &pgconn.PgError{Code: "42P01", Message: "relation \"alignments\" does not exist"},
		"typed validation":   pkgerrors.New(pkgerrors.CodeValidation, "should not surface as 400"),
		"typed dependency":   pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("pool exhausted"), "list unaligned items"),
		"context canceled":   context.Canceled,
		"wrapped":            fmt.Errorf("scan row: %w", errors.New("sql: Scan error on column index 2")),
	}

	for name, cause := range cases {
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logg := logger.New(logger.Options{ServiceName: "test", Output: buf})
			svc := &testAlignmentsService{
				fetchFn: func(context.Context) ([]alignments.Item, error) { return nil, cause },
			}

			resp := serveUnaligned(t, svc, logg)

			assert.Equal(t, http.StatusInternalServerError, resp.Code)
			assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
			assert.Equal(t, retrievalFailureBody, strings.TrimSpace(resp.Body.String()))
			assert.NotContains(t, resp.Body.String(), cause.Error())

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, 1, "exactly one diagnostic record")
			var entry map[string]any
			require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
			assert.Equal(t, "error", entry["level"])
			assert.Equal(t, unalignedItemsFailureLabel, entry["message"])
			assert.Equal(t, cause.Error(), entry["error"])
		})
	}
}

func TestUnalignedItemsFailureIncludesPostgresDetailInLogOnly(t *testing.T) {
	buf := &bytes.Buffer{}
	logg := logger.New(logger.Options{ServiceName: "test", Output: buf})
	svc := &testAlignmentsService{
		fetchFn: func(context.Context) ([]alignments.Item, error) {
			return nil, &pgconn.PgError{Code: "57P01", Message: "terminating connection due to administrator command"}
		},
	}

	resp := serveUnaligned(t, svc, logg)

	assert.Equal(t, retrievalFailureBody, strings.TrimSpace(resp.Body.String()))
	assert.Contains(t, buf.String(), `"pg_code":"57P01"`)
}

func TestUnalignedItemsNilServiceStillReturns500(t *testing.T) {
	resp := serveUnaligned(t, nil, discardLogger())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, retrievalFailureBody, strings.TrimSpace(resp.Body.String()))
}

func TestUnalignedItemsNilLoggerDoesNotPanic(t *testing.T) {
	svc := &testAlignmentsService{
		fetchFn: func(context.Context) ([]alignments.Item, error) { return nil, errors.New("boom") },
	}

	resp := serveUnaligned(t, svc, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestUnalignedItemsIsIdempotent(t *testing.T) {
	svc := &testAlignmentsService{
		fetchFn: func(context.Context) ([]alignments.Item, error) {
			return []alignments.Item{{ID: "1", Name: "Alpha"}}, nil
		},
	}

	first := serveUnaligned(t, svc, discardLogger())
	second := serveUnaligned(t, svc, discardLogger())

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 2, svc.calls, "one retrieval per request, no retries")
}

func TestUnalignedItemsPassesRequestContext(t *testing.T) {
	type key struct{}
	svc := &testAlignmentsService{
		fetchFn: func(ctx context.Context) ([]alignments.Item, error) {
			if ctx.Value(key{}) != "marker" {
				t.Fatal("request context not forwarded")
			}
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/alignments/unaligned", nil)
	req = req.WithContext(context.WithValue(req.Context(), key{}, "marker"))
	resp := httptest.NewRecorder()
	UnalignedItems(svc, discardLogger())(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestUnalignedItemsConcurrentRequests(t *testing.T) {
	svc := &testAlignmentsService{
		fetchFn: func(ctx context.Context) ([]alignments.Item, error) {
			return []alignments.Item{{ID: "1"}}, nil
		},
	}
	handler := UnalignedItems(svc, discardLogger())

	const n = 32
	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := httptest.NewRecorder()
			handler(resp, httptest.NewRequest(http.MethodGet, "/api/alignments/unaligned", nil))
			codes[i] = resp.Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
	assert.Equal(t, n, svc.calls)
}
