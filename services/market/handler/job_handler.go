package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"solosphere-server/internal/marketerrors"
	"solosphere-server/services/market/helpers"
	"solosphere-server/utils"
)

// ListJobsHandler handles GET /jobs
func (h *MarketHandler) ListJobsHandler(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListJobsHandler: error retrieving jobs", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, jobs, "jobs retrieved successfully")
	helpers.LogSuccess("ListJobsHandler", "jobs retrieved successfully", map[string]any{
		"count": len(jobs),
	})
}

// GetJobHandler handles GET /job/:id
func (h *MarketHandler) GetJobHandler(c *gin.Context) {
	id := c.Param("id")
	job, err := h.service.GetJob(c.Request.Context(), id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetJobHandler: error retrieving job", map[string]any{"job_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, job, "job retrieved successfully")
	helpers.LogSuccess("GetJobHandler", "job retrieved successfully", map[string]any{
		"job_id": job.ID.Hex(),
	})
}

// CreateJobHandler handles POST /job
func (h *MarketHandler) CreateJobHandler(c *gin.Context) {
	var req helpers.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateJobHandler", err)
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), req.ToModel())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateJobHandler: failed to create job", map[string]any{
			"buyer_email": req.Buyer.Email,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, job, "job created successfully")
	helpers.LogSuccess("CreateJobHandler", "job created successfully", map[string]any{
		"job_id":      job.ID.Hex(),
		"buyer_email": job.Buyer.Email,
	})
}

// UpdateJobHandler handles PUT /job/:id. The route runs behind the session
// guard; ownership is checked here against the stored job's buyer, and the
// buyer email of an existing job never changes through this route.
func (h *MarketHandler) UpdateJobHandler(c *gin.Context) {
	id := c.Param("id")

	var req helpers.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateJobHandler", err)
		return
	}

	sessionEmail, _ := helpers.SessionEmail(c)
	job := req.ToModel()

	existing, err := h.service.GetJob(c.Request.Context(), id)
	switch {
	case err == nil:
		if !helpers.OwnerMatches(sessionEmail, existing.Buyer.Email) {
			utils.JSONError(c, http.StatusForbidden, marketerrors.ErrForbidden, "forbidden access")
			utils.Warn("UpdateJobHandler: owner mismatch", map[string]any{
				"job_id":        id,
				"session_email": sessionEmail,
			})
			return
		}
		// buyer.email is immutable after creation
		job.Buyer.Email = existing.Buyer.Email
	case errors.Is(err, marketerrors.ErrJobNotFound):
		// upsert path: the caller may only create a job it owns
		if !helpers.OwnerMatches(sessionEmail, job.Buyer.Email) {
			utils.JSONError(c, http.StatusForbidden, marketerrors.ErrForbidden, "forbidden access")
			return
		}
	default:
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	updated, err := h.service.UpdateJob(c.Request.Context(), id, job)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdateJobHandler: failed to update job", map[string]any{"job_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "job updated successfully")
	helpers.LogSuccess("UpdateJobHandler", "job updated successfully", map[string]any{
		"job_id": id,
	})
}

// DeleteJobHandler handles DELETE /job/:id
func (h *MarketHandler) DeleteJobHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteJob(c.Request.Context(), id); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteJobHandler: error deleting job", map[string]any{"job_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "job deleted successfully")
	helpers.LogSuccess("DeleteJobHandler", "job deleted successfully", map[string]any{
		"job_id": id,
	})
}

// JobsByBuyerHandler handles GET /jobs/:email (owner-scoped)
func (h *MarketHandler) JobsByBuyerHandler(c *gin.Context) {
	email := c.Param("email")
	sessionEmail, _ := helpers.SessionEmail(c)
	if !helpers.OwnerMatches(sessionEmail, email) {
		utils.JSONError(c, http.StatusForbidden, marketerrors.ErrForbidden, "forbidden access")
		utils.Warn("JobsByBuyerHandler: owner mismatch", map[string]any{
			"path_email":    email,
			"session_email": sessionEmail,
		})
		return
	}

	jobs, err := h.service.JobsByBuyer(c.Request.Context(), email)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("JobsByBuyerHandler: error retrieving jobs", map[string]any{"email": email, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, jobs, "jobs retrieved successfully")
	helpers.LogSuccess("JobsByBuyerHandler", "jobs retrieved successfully", map[string]any{
		"email": email,
		"count": len(jobs),
	})
}

// AllJobsHandler handles GET /all-jobs with query params size, page,
// filter, sort and search
func (h *MarketHandler) AllJobsHandler(c *gin.Context) {
	q := helpers.ParseListingQuery(c)

	jobs, err := h.service.ListJobsPage(c.Request.Context(), q)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AllJobsHandler: error retrieving jobs", map[string]any{
			"page":  q.Page,
			"size":  q.Size,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, jobs, "jobs retrieved successfully")
	helpers.LogSuccess("AllJobsHandler", "jobs retrieved successfully", map[string]any{
		"page":   q.Page,
		"size":   q.Size,
		"search": q.Search,
		"count":  len(jobs),
	})
}

// JobsCountHandler handles GET /jobs-count with query params filter and search
func (h *MarketHandler) JobsCountHandler(c *gin.Context) {
	q := helpers.ParseListingQuery(c)

	count, err := h.service.CountJobs(c.Request.Context(), q)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("JobsCountHandler: error counting jobs", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"count": count}, "jobs counted successfully")
	helpers.LogSuccess("JobsCountHandler", "jobs counted successfully", map[string]any{
		"count": count,
	})
}
