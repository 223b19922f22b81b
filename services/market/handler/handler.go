package handler

import (
	"context"

	model "solosphere-server/internal/models"
	"solosphere-server/internal/repository"
)

//go:generate mockgen -source=handler.go -destination=mock_service.go -package=handler

// MarketServiceInterface is the business-logic surface the HTTP handlers depend on
type MarketServiceInterface interface {
	CreateJob(ctx context.Context, job model.Job) (model.Job, error)
	GetJob(ctx context.Context, id string) (model.Job, error)
	ListJobs(ctx context.Context) ([]model.Job, error)
	ListJobsPage(ctx context.Context, q repository.JobListQuery) ([]model.Job, error)
	CountJobs(ctx context.Context, q repository.JobListQuery) (int64, error)
	JobsByBuyer(ctx context.Context, email string) ([]model.Job, error)
	UpdateJob(ctx context.Context, id string, job model.Job) (model.Job, error)
	DeleteJob(ctx context.Context, id string) error
	PlaceBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	BidsBySeller(ctx context.Context, email string) ([]model.Bid, error)
	BidsByBuyer(ctx context.Context, email string) ([]model.Bid, error)
	UpdateBidStatus(ctx context.Context, id, status string) (model.Bid, error)
}

// MarketHandler serves the job and bid routes
type MarketHandler struct {
	service MarketServiceInterface
}

// NewMarketHandler creates a new MarketHandler instance
func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}
