package market

import (
	"context"
	"errors"
	"fmt"

	"solosphere-server/internal/marketerrors"
	"solosphere-server/internal/models"
	"solosphere-server/internal/repository"
)

// MarketService defines the business logic for the job-bidding marketplace
type MarketService struct {
	repo repository.MarketDB
}

// NewMarketService creates a new MarketService instance
func NewMarketService(repo repository.MarketDB) *MarketService {
	return &MarketService{
		repo: repo,
	}
}

// CreateJob validates and stores a new job posting. The bid counter always
// starts at zero regardless of what the caller sends.
func (s *MarketService) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	if job.Title == "" || job.Buyer.Email == "" {
		return models.Job{}, fmt.Errorf("service: %w - missing job title or buyer email", marketerrors.ErrInvalidInput)
	}

	job.BidCount = 0
	created, err := s.repo.InsertJob(ctx, job)
	if err != nil {
		return models.Job{}, fmt.Errorf("service: failed to create job for buyer %s: %w", job.Buyer.Email, err)
	}
	return created, nil
}

// GetJob returns one job by its identifier
func (s *MarketService) GetJob(ctx context.Context, id string) (models.Job, error) {
	if id == "" {
		return models.Job{}, fmt.Errorf("service: %w - empty job ID", marketerrors.ErrInvalidInput)
	}

	job, err := s.repo.GetJob(ctx, id)
	if err != nil {
		return models.Job{}, fmt.Errorf("service: failed to get job %s: %w", id, err)
	}
	return job, nil
}

// ListJobs returns every posted job
func (s *MarketService) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.repo.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list jobs: %w", err)
	}
	return jobs, nil
}

// ListJobsPage returns one filtered, sorted page of the public job listing
func (s *MarketService) ListJobsPage(ctx context.Context, q repository.JobListQuery) ([]models.Job, error) {
	if q.Page < 1 || q.Size < 1 {
		return nil, fmt.Errorf("service: %w - page and size must be positive", marketerrors.ErrInvalidInput)
	}

	jobs, err := s.repo.ListJobsPage(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list jobs page %d: %w", q.Page, err)
	}
	return jobs, nil
}

// CountJobs returns the total number of jobs matching the listing filter,
// so the caller can compute the page count
func (s *MarketService) CountJobs(ctx context.Context, q repository.JobListQuery) (int64, error) {
	count, err := s.repo.CountJobs(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count jobs: %w", err)
	}
	return count, nil
}

// JobsByBuyer returns every job posted by the given buyer email
func (s *MarketService) JobsByBuyer(ctx context.Context, email string) ([]models.Job, error) {
	if email == "" {
		return nil, fmt.Errorf("service: %w - empty buyer email", marketerrors.ErrInvalidInput)
	}

	jobs, err := s.repo.JobsByBuyer(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get jobs for buyer %s: %w", email, err)
	}
	return jobs, nil
}

// UpdateJob replaces a job's fields, upserting when the job does not exist
func (s *MarketService) UpdateJob(ctx context.Context, id string, job models.Job) (models.Job, error) {
	if id == "" {
		return models.Job{}, fmt.Errorf("service: %w - empty job ID", marketerrors.ErrInvalidInput)
	}
	if job.Title == "" || job.Buyer.Email == "" {
		return models.Job{}, fmt.Errorf("service: %w - missing job title or buyer email", marketerrors.ErrInvalidInput)
	}

	updated, err := s.repo.ReplaceJob(ctx, id, job)
	if err != nil {
		return models.Job{}, fmt.Errorf("service: failed to update job %s: %w", id, err)
	}
	return updated, nil
}

// DeleteJob removes one job by its identifier
func (s *MarketService) DeleteJob(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("service: %w - empty job ID", marketerrors.ErrInvalidInput)
	}

	if err := s.repo.DeleteJob(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete job %s: %w", id, err)
	}
	return nil
}

// PlaceBid validates and records a seller's bid on a job, then bumps the
// job's bid counter. A seller gets exactly one bid per job; the repository
// enforces the same rule again at insert time so concurrent duplicates
// cannot slip through the pre-check.
func (s *MarketService) PlaceBid(ctx context.Context, bid models.Bid) (models.Bid, error) {
	if err := s.validateBid(bid); err != nil {
		return models.Bid{}, err
	}

	if bid.Status == "" {
		bid.Status = models.StatusPending
	}

	_, err := s.repo.FindBid(ctx, bid.Email, bid.JobID)
	if err == nil {
		return models.Bid{}, fmt.Errorf("service: %w", marketerrors.ErrDuplicateBid)
	}
	if !errors.Is(err, marketerrors.ErrBidNotFound) {
		return models.Bid{}, fmt.Errorf("service: failed to check existing bid: %w", err)
	}

	created, err := s.repo.InsertBid(ctx, bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on job %s by %s: %w", bid.JobID, bid.Email, err)
	}

	if err := s.repo.IncrementBidCount(ctx, bid.JobID, 1); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to bump bid count on job %s: %w", bid.JobID, err)
	}

	return created, nil
}

// validateBid checks input validity for bidding
func (s *MarketService) validateBid(bid models.Bid) error {
	if bid.JobID == "" || bid.Email == "" {
		return fmt.Errorf("service: %w - missing jobId or email", marketerrors.ErrInvalidInput)
	}
	if bid.Price <= 0 {
		return fmt.Errorf("service: %w - non-positive bid price", marketerrors.ErrInvalidInput)
	}
	return nil
}

// BidsBySeller returns every bid placed by the given seller email
func (s *MarketService) BidsBySeller(ctx context.Context, email string) ([]models.Bid, error) {
	if email == "" {
		return nil, fmt.Errorf("service: %w - empty seller email", marketerrors.ErrInvalidInput)
	}

	bids, err := s.repo.BidsBySeller(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for seller %s: %w", email, err)
	}
	return bids, nil
}

// BidsByBuyer returns every bid received on jobs owned by the given buyer email
func (s *MarketService) BidsByBuyer(ctx context.Context, email string) ([]models.Bid, error) {
	if email == "" {
		return nil, fmt.Errorf("service: %w - empty buyer email", marketerrors.ErrInvalidInput)
	}

	bids, err := s.repo.BidsByBuyer(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bid requests for buyer %s: %w", email, err)
	}
	return bids, nil
}

// UpdateBidStatus sets a bid's status to the caller-supplied value. There
// is no transition state machine: any status may replace any other, and
// setting the current value again succeeds.
func (s *MarketService) UpdateBidStatus(ctx context.Context, id, status string) (models.Bid, error) {
	if id == "" || status == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing bid ID or status", marketerrors.ErrInvalidInput)
	}

	bid, err := s.repo.SetBidStatus(ctx, id, status)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update status for bid %s: %w", id, err)
	}
	return bid, nil
}
