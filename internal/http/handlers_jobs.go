// Package httpx provides HTTP handlers and utilities for the depscout analysis API.
package httpx

import (
	"net/http"

	"github.com/depscout/depscout/internal/domain/model"
	"github.com/depscout/depscout/internal/service"
)

// JobHandlers provides HTTP handlers for submission and polling.
type JobHandlers struct {
	Svc *service.JobService
}

// Submit handles PUT /request/packages: it validates the submission, creates
// a job, and answers with the job id. The submission is accepted before any
// analysis result is observable; callers poll for it.
func (h *JobHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	jobID, err := h.Svc.Submit(r.Context(), &req)
	if err != nil {
		writeAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, model.SubmitResponse{JobID: jobID})
}

// GetJob handles GET /request/packages/{job_id}: it returns the job snapshot,
// advancing the job's status as a side effect of the poll. Unknown ids answer
// 404 with an empty body.
func (h *JobHandlers) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("job_id")

	job, err := h.Svc.Status(r.Context(), jobID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, job)
}
