package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"solosphere-server/internal/marketerrors"
	model "solosphere-server/internal/models"
	"solosphere-server/internal/repository"
	"solosphere-server/services/market/helpers"
)

// sessionAs fakes the session guard by injecting a verified email, so
// owner-match behavior can be tested without real tokens
func sessionAs(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		helpers.SetSessionEmail(c, email)
		c.Next()
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketServiceInterface(ctrl)
	h := NewMarketHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bid", h.PlaceBidHandler)

	bidID := primitive.NewObjectID()

	validRequest := helpers.PlaceBidRequest{
		JobID:      "64b000000000000000000001",
		Email:      "seller@x.com",
		Price:      150,
		Comment:    "Can start tomorrow",
		BuyerEmail: "buyer@x.com",
	}

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		validate       func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:        "success_valid_bid",
			requestBody: validRequest,
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), validRequest.ToModel()).
					Return(model.Bid{
						ID:         bidID,
						JobID:      validRequest.JobID,
						Email:      validRequest.Email,
						Price:      validRequest.Price,
						Status:     model.StatusPending,
						BuyerEmail: validRequest.BuyerEmail,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]any)
				require.Equal(t, bidID.Hex(), data["_id"])
				require.Equal(t, "seller@x.com", data["email"])
				require.Equal(t, model.StatusPending, data["status"])
			},
		},
		{
			name:        "duplicate_bid_plain_text_400",
			requestBody: validRequest,
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), validRequest.ToModel()).
					Return(model.Bid{}, fmt.Errorf("service: %w", marketerrors.ErrDuplicateBid))
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				require.Equal(t, "You have already placed a bid on this job.", w.Body.String())
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{jobId: missing quotes}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing_email",
			requestBody: helpers.PlaceBidRequest{
				JobID: "64b000000000000000000001",
				Price: 100,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "non_positive_price",
			requestBody: helpers.PlaceBidRequest{
				JobID: "64b000000000000000000001",
				Email: "seller@x.com",
				Price: -5,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "service_error_maps_to_500",
			requestBody: validRequest,
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), validRequest.ToModel()).
					Return(model.Bid{}, errors.New("store connection lost"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := performJSON(t, router, http.MethodPost, "/bid", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.validate != nil {
				tc.validate(t, w)
			}
		})
	}
}

// Test AllJobsHandler query parameter sanitation
func TestAllJobsHandler_ParameterSanitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketServiceInterface(ctrl)
	h := NewMarketHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/all-jobs", h.AllJobsHandler)

	tests := []struct {
		name      string
		url       string
		wantQuery repository.JobListQuery
	}{
		{
			name: "all_params_present",
			url:  "/all-jobs?page=2&size=5&search=web&filter=Web%20Development&sort=asc",
			wantQuery: repository.JobListQuery{
				Search: "web", Category: "Web Development", Sort: "asc", Page: 2, Size: 5,
			},
		},
		{
			name:      "missing_params_use_defaults",
			url:       "/all-jobs",
			wantQuery: repository.JobListQuery{Page: 1, Size: 10},
		},
		{
			name:      "non_numeric_page_and_size",
			url:       "/all-jobs?page=abc&size=xyz",
			wantQuery: repository.JobListQuery{Page: 1, Size: 10},
		},
		{
			name:      "non_positive_page_and_size",
			url:       "/all-jobs?page=0&size=-3",
			wantQuery: repository.JobListQuery{Page: 1, Size: 10},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockService.EXPECT().
				ListJobsPage(gomock.Any(), tc.wantQuery).
				Return([]model.Job{}, nil)

			w := performJSON(t, router, http.MethodGet, tc.url, nil)
			require.Equal(t, http.StatusOK, w.Code)
		})
	}
}

// Test JobsCountHandler
func TestJobsCountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketServiceInterface(ctrl)
	h := NewMarketHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/jobs-count", h.JobsCountHandler)

	mockService.EXPECT().
		CountJobs(gomock.Any(), repository.JobListQuery{Search: "web", Category: "Web Development", Page: 1, Size: 10}).
		Return(int64(23), nil)

	w := performJSON(t, router, http.MethodGet, "/jobs-count?search=web&filter=Web%20Development", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	require.Equal(t, 23.0, data["count"])
}

// Test owner matching on MyBidsHandler
func TestMyBidsHandler_OwnerMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketServiceInterface(ctrl)
	h := NewMarketHandler(mockService)

	tests := []struct {
		name           string
		sessionEmail   string
		pathEmail      string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:         "matching_owner_proceeds",
			sessionEmail: "seller@x.com",
			pathEmail:    "seller@x.com",
			mockSetup: func() {
				mockService.EXPECT().
					BidsBySeller(gomock.Any(), "seller@x.com").
					Return([]model.Bid{{Email: "seller@x.com", Price: 100}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "mismatched_owner_forbidden",
			sessionEmail:   "intruder@x.com",
			pathEmail:      "seller@x.com",
			mockSetup:      func() {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing_session_forbidden",
			sessionEmail:   "",
			pathEmail:      "seller@x.com",
			mockSetup:      func() {},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/my-bids/:email", sessionAs(tc.sessionEmail), h.MyBidsHandler)

			w := performJSON(t, router, http.MethodGet, "/my-bids/"+tc.pathEmail, nil)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test owner matching on BidRequestsHandler
func TestBidRequestsHandler_OwnerMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketServiceInterface(ctrl)
	h := NewMarketHandler(mockService)

	gin.SetMode(gin.TestMode)

	t.Run("matching_owner", func(t *testing.T) {
		mockService.EXPECT().
			BidsByBuyer(gomock.Any(), "buyer@x.com").
			Return([]model.Bid{}, nil)

		router := gin.New()
		router.GET("/bid-requests/:email", sessionAs("buyer@x.com"), h.BidRequestsHandler)
		w := performJSON(t, router, http.MethodGet, "/bid-requests/buyer@x.com", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mismatched_owner", func(t *testing.T) {
		router := gin.New()
		router.GET("/bid-requests/:email", sessionAs("other@x.com"), h.BidRequestsHandler)
		w := performJSON(t, router, http.MethodGet, "/bid-requests/buyer@x.com", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// Test UpdateBidStatusHandler
func TestUpdateBidStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketServiceInterface(ctrl)
	h := NewMarketHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/bid/:id", h.UpdateBidStatusHandler)

	bidID := primitive.NewObjectID()

	tests := []struct {
		name           string
		bidID          string
		requestBody    any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "success",
			bidID:       bidID.Hex(),
			requestBody: helpers.UpdateBidStatusRequest{Status: model.StatusInProgress},
			mockSetup: func() {
				mockService.EXPECT().
					UpdateBidStatus(gomock.Any(), bidID.Hex(), model.StatusInProgress).
					Return(model.Bid{ID: bidID, Status: model.StatusInProgress}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "unknown_bid",
			bidID:       "64b000000000000000000099",
			requestBody: helpers.UpdateBidStatusRequest{Status: model.StatusComplete},
			mockSetup: func() {
				mockService.EXPECT().
					UpdateBidStatus(gomock.Any(), "64b000000000000000000099", model.StatusComplete).
					Return(model.Bid{}, fmt.Errorf("service: %w", marketerrors.ErrBidNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing_status",
			bidID:          bidID.Hex(),
			requestBody:    map[string]any{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := performJSON(t, router, http.MethodPatch, "/bid/"+tc.bidID, tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test UpdateJobHandler ownership semantics
func TestUpdateJobHandler_Ownership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketServiceInterface(ctrl)
	h := NewMarketHandler(mockService)

	gin.SetMode(gin.TestMode)

	jobID := primitive.NewObjectID()
	body := helpers.SaveJobRequest{
		Title:    "Updated title",
		Category: "Web Development",
		Deadline: "2026-09-01",
		MinPrice: 100,
		MaxPrice: 200,
		Buyer:    helpers.BuyerPayload{Email: "owner@x.com"},
	}

	t.Run("owner_updates_own_job", func(t *testing.T) {
		mockService.EXPECT().
			GetJob(gomock.Any(), jobID.Hex()).
			Return(model.Job{ID: jobID, Title: "Old", Buyer: model.Buyer{Email: "owner@x.com"}}, nil)
		mockService.EXPECT().
			UpdateJob(gomock.Any(), jobID.Hex(), gomock.Any()).
			Return(model.Job{ID: jobID, Title: "Updated title", Buyer: model.Buyer{Email: "owner@x.com"}}, nil)

		router := gin.New()
		router.PUT("/job/:id", sessionAs("owner@x.com"), h.UpdateJobHandler)
		w := performJSON(t, router, http.MethodPut, "/job/"+jobID.Hex(), body)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non_owner_forbidden", func(t *testing.T) {
		mockService.EXPECT().
			GetJob(gomock.Any(), jobID.Hex()).
			Return(model.Job{ID: jobID, Title: "Old", Buyer: model.Buyer{Email: "owner@x.com"}}, nil)

		router := gin.New()
		router.PUT("/job/:id", sessionAs("intruder@x.com"), h.UpdateJobHandler)
		w := performJSON(t, router, http.MethodPut, "/job/"+jobID.Hex(), body)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("buyer_email_is_immutable", func(t *testing.T) {
		hijack := body
		hijack.Buyer.Email = "stolen@x.com"

		mockService.EXPECT().
			GetJob(gomock.Any(), jobID.Hex()).
			Return(model.Job{ID: jobID, Title: "Old", Buyer: model.Buyer{Email: "owner@x.com"}}, nil)
		mockService.EXPECT().
			UpdateJob(gomock.Any(), jobID.Hex(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, job model.Job) (model.Job, error) {
				require.Equal(t, "owner@x.com", job.Buyer.Email)
				return job, nil
			})

		router := gin.New()
		router.PUT("/job/:id", sessionAs("owner@x.com"), h.UpdateJobHandler)
		w := performJSON(t, router, http.MethodPut, "/job/"+jobID.Hex(), hijack)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("upsert_requires_owning_the_payload", func(t *testing.T) {
		missingID := primitive.NewObjectID()
		mockService.EXPECT().
			GetJob(gomock.Any(), missingID.Hex()).
			Return(model.Job{}, fmt.Errorf("service: %w", marketerrors.ErrJobNotFound))

		router := gin.New()
		router.PUT("/job/:id", sessionAs("someone-else@x.com"), h.UpdateJobHandler)
		w := performJSON(t, router, http.MethodPut, "/job/"+missingID.Hex(), body)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
