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

// PlaceBidHandler handles POST /bid. A duplicate bid answers 400 with a
// plain-text body; that is the wire contract the browser client shows to
// the user verbatim.
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, marketerrors.ErrDuplicateBid) {
			c.String(http.StatusBadRequest, "You have already placed a bid on this job.")
			utils.Warn("PlaceBidHandler: duplicate bid", map[string]any{
				"job_id": req.JobID,
				"email":  req.Email,
			})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"job_id": req.JobID,
			"email":  req.Email,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id": bid.ID.Hex(),
		"job_id": bid.JobID,
		"email":  bid.Email,
		"price":  bid.Price,
	})
}

// MyBidsHandler handles GET /my-bids/:email (owner-scoped)
func (h *MarketHandler) MyBidsHandler(c *gin.Context) {
	email := c.Param("email")
	sessionEmail, _ := helpers.SessionEmail(c)
	if !helpers.OwnerMatches(sessionEmail, email) {
		utils.JSONError(c, http.StatusForbidden, marketerrors.ErrForbidden, "forbidden access")
		utils.Warn("MyBidsHandler: owner mismatch", map[string]any{
			"path_email":    email,
			"session_email": sessionEmail,
		})
		return
	}

	bids, err := h.service.BidsBySeller(c.Request.Context(), email)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MyBidsHandler: error retrieving bids", map[string]any{"email": email, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("MyBidsHandler", "bids retrieved successfully", map[string]any{
		"email": email,
		"count": len(bids),
	})
}

// BidRequestsHandler handles GET /bid-requests/:email (owner-scoped)
func (h *MarketHandler) BidRequestsHandler(c *gin.Context) {
	email := c.Param("email")
	sessionEmail, _ := helpers.SessionEmail(c)
	if !helpers.OwnerMatches(sessionEmail, email) {
		utils.JSONError(c, http.StatusForbidden, marketerrors.ErrForbidden, "forbidden access")
		utils.Warn("BidRequestsHandler: owner mismatch", map[string]any{
			"path_email":    email,
			"session_email": sessionEmail,
		})
		return
	}

	bids, err := h.service.BidsByBuyer(c.Request.Context(), email)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BidRequestsHandler: error retrieving bid requests", map[string]any{"email": email, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bid requests retrieved successfully")
	helpers.LogSuccess("BidRequestsHandler", "bid requests retrieved successfully", map[string]any{
		"email": email,
		"count": len(bids),
	})
}

// UpdateBidStatusHandler handles PATCH /bid/:id. The status is stored
// as-is; there is no transition state machine on the server.
func (h *MarketHandler) UpdateBidStatusHandler(c *gin.Context) {
	id := c.Param("id")

	var req helpers.UpdateBidStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidStatusHandler", err)
		return
	}

	bid, err := h.service.UpdateBidStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateBidStatusHandler: failed to update status", map[string]any{
			"bid_id": id,
			"status": req.Status,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "bid status updated successfully")
	helpers.LogSuccess("UpdateBidStatusHandler", "bid status updated successfully", map[string]any{
		"bid_id": id,
		"status": bid.Status,
	})
}
