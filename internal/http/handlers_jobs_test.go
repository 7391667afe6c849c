package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscout/depscout/internal/domain/model"
)

func submitBody() string {
	return `{"packages":[{"name":"react","version":"16.13.1","type":"npm"}]}`
}

func doSubmit(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/request/packages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doPoll(t *testing.T, router http.Handler, jobID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/request/packages/"+jobID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitPackages(t *testing.T) {
	router := NewRouter(newTestServices(t))

	t.Run("valid submission answers 201 with a job id", func(t *testing.T) {
		rec := doSubmit(t, router, submitBody())
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp model.SubmitResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.JobID)
	})

	t.Run("repeat submissions get fresh ids", func(t *testing.T) {
		var first, second model.SubmitResponse
		require.NoError(t, json.Unmarshal(doSubmit(t, router, submitBody()).Body.Bytes(), &first))
		require.NoError(t, json.Unmarshal(doSubmit(t, router, submitBody()).Body.Bytes(), &second))
		assert.NotEqual(t, first.JobID, second.JobID)
	})

	t.Run("missing packages key answers 400", func(t *testing.T) {
		rec := doSubmit(t, router, `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation_failed")
	})

	t.Run("entry missing a field answers 400 with its path", func(t *testing.T) {
		rec := doSubmit(t, router, `{"packages":[{"name":"react","type":"npm"}]}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "packages[0].version")
	})

	t.Run("malformed JSON answers 400", func(t *testing.T) {
		rec := doSubmit(t, router, `{"packages":[`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_json")
	})

	t.Run("unknown body keys are rejected", func(t *testing.T) {
		rec := doSubmit(t, router, `{"packages":[],"extra":true}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_json")
	})

	t.Run("empty packages list is accepted", func(t *testing.T) {
		rec := doSubmit(t, router, `{"packages":[]}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestGetJob(t *testing.T) {
	router := NewRouter(newTestServices(t))

	t.Run("polling walks the status sequence", func(t *testing.T) {
		var resp model.SubmitResponse
		require.NoError(t, json.Unmarshal(doSubmit(t, router, submitBody()).Body.Bytes(), &resp))

		want := []model.Status{model.StatusNew, model.StatusPending, model.StatusCompleted}
		for _, status := range want {
			rec := doPoll(t, router, resp.JobID)
			require.Equal(t, http.StatusOK, rec.Code)

			var job model.Job
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
			assert.Equal(t, resp.JobID, job.ID)
			assert.Equal(t, status, job.Status)
		}

		// Past the end of the sequence the job stays terminal.
		var job model.Job
		require.NoError(t, json.Unmarshal(doPoll(t, router, resp.JobID).Body.Bytes(), &job))
		assert.Equal(t, model.StatusCompleted, job.Status)
	})

	t.Run("snapshot carries the full package tree", func(t *testing.T) {
		var resp model.SubmitResponse
		require.NoError(t, json.Unmarshal(doSubmit(t, router, submitBody()).Body.Bytes(), &resp))

		rec := doPoll(t, router, resp.JobID)
		var job model.Job
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))

		require.Len(t, job.Packages, 1)
		pkg := job.Packages[0]
		assert.Equal(t, "react", pkg.Name)
		require.NotNil(t, pkg.Risk)
		assert.Equal(t, 60, *pkg.Risk)
		assert.Nil(t, pkg.License)
		require.Len(t, pkg.Dependencies, 2)
	})

	t.Run("unknown id answers 404 with an empty body", func(t *testing.T) {
		rec := doPoll(t, router, "0e9f68a1-0000-0000-0000-000000000000")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("a failed poll does not advance other jobs", func(t *testing.T) {
		var resp model.SubmitResponse
		require.NoError(t, json.Unmarshal(doSubmit(t, router, submitBody()).Body.Bytes(), &resp))

		doPoll(t, router, "missing-id")

		var job model.Job
		require.NoError(t, json.Unmarshal(doPoll(t, router, resp.JobID).Body.Bytes(), &job))
		assert.Equal(t, model.StatusNew, job.Status)
	})
}
