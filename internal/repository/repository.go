package repository

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"solosphere-server/internal/marketerrors"
	model "solosphere-server/internal/models"
)

// MarketDB defines the job and bid storage interface for the marketplace
type MarketDB interface {
	InsertJob(ctx context.Context, job model.Job) (model.Job, error)
	GetJob(ctx context.Context, id string) (model.Job, error)
	ListJobs(ctx context.Context) ([]model.Job, error)
	ListJobsPage(ctx context.Context, q JobListQuery) ([]model.Job, error)
	CountJobs(ctx context.Context, q JobListQuery) (int64, error)
	JobsByBuyer(ctx context.Context, email string) ([]model.Job, error)
	ReplaceJob(ctx context.Context, id string, job model.Job) (model.Job, error)
	DeleteJob(ctx context.Context, id string) error

	FindBid(ctx context.Context, email, jobID string) (model.Bid, error)
	InsertBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	IncrementBidCount(ctx context.Context, jobID string, delta int) error
	BidsBySeller(ctx context.Context, email string) ([]model.Bid, error)
	BidsByBuyer(ctx context.Context, email string) ([]model.Bid, error)
	SetBidStatus(ctx context.Context, id, status string) (model.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB.
// It mirrors the Mongo implementation's semantics (including the empty
// search pattern matching all titles) and backs the test suites.
type MemoryRepo struct {
	mu   sync.RWMutex
	jobs map[string]model.Job // key: job ID hex
	bids map[string]model.Bid // key: bid ID hex
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		jobs: make(map[string]model.Job),
		bids: make(map[string]model.Bid),
	}
}

// InsertJob stores a new job and assigns its identifier
func (r *MemoryRepo) InsertJob(ctx context.Context, job model.Job) (model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID.IsZero() {
		job.ID = primitive.NewObjectID()
	}
	r.jobs[job.ID.Hex()] = job
	return job, nil
}

// GetJob returns one job by its identifier
func (r *MemoryRepo) GetJob(ctx context.Context, id string) (model.Job, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return model.Job{}, fmt.Errorf("get job %s: %w", id, marketerrors.ErrInvalidInput)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return model.Job{}, fmt.Errorf("get job %s: %w", id, marketerrors.ErrJobNotFound)
	}
	return job, nil
}

// ListJobs returns every stored job
func (r *MemoryRepo) ListJobs(ctx context.Context) ([]model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]model.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// matchingJobs applies the listing filter without pagination. Callers must
// hold at least a read lock.
func (r *MemoryRepo) matchingJobs(q JobListQuery) ([]model.Job, error) {
	pattern, err := regexp.Compile("(?i)" + q.Search)
	if err != nil {
		return nil, fmt.Errorf("list jobs: bad search pattern: %w", marketerrors.ErrInvalidInput)
	}

	matched := make([]model.Job, 0)
	for _, job := range r.jobs {
		if !pattern.MatchString(job.Title) {
			continue
		}
		if q.Category != "" && job.Category != q.Category {
			continue
		}
		matched = append(matched, job)
	}
	return matched, nil
}

// ListJobsPage returns one filtered, sorted page of the job listing
func (r *MemoryRepo) ListJobsPage(ctx context.Context, q JobListQuery) ([]model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched, err := r.matchingJobs(q)
	if err != nil {
		return nil, err
	}

	switch q.Sort {
	case SortAsc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Deadline < matched[j].Deadline })
	case SortDesc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Deadline > matched[j].Deadline })
	default:
		// keep iteration order deterministic for tests
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID.Hex() < matched[j].ID.Hex() })
	}

	skip := q.Skip()
	if skip >= int64(len(matched)) {
		return []model.Job{}, nil
	}
	matched = matched[skip:]
	if int64(len(matched)) > q.Size {
		matched = matched[:q.Size]
	}
	return matched, nil
}

// CountJobs returns the total number of jobs matching the listing filter
func (r *MemoryRepo) CountJobs(ctx context.Context, q JobListQuery) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched, err := r.matchingJobs(q)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

// JobsByBuyer returns every job posted by the given buyer email
func (r *MemoryRepo) JobsByBuyer(ctx context.Context, email string) ([]model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]model.Job, 0)
	for _, job := range r.jobs {
		if job.Buyer.Email == email {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

// ReplaceJob overwrites the stored job's fields, creating the document if
// it does not exist. The bid counter of an existing job is preserved.
func (r *MemoryRepo) ReplaceJob(ctx context.Context, id string, job model.Job) (model.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Job{}, fmt.Errorf("replace job %s: %w", id, marketerrors.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	job.ID = oid
	if existing, ok := r.jobs[id]; ok {
		job.BidCount = existing.BidCount
	}
	r.jobs[id] = job
	return job, nil
}

// DeleteJob removes one job by its identifier
func (r *MemoryRepo) DeleteJob(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("delete job %s: %w", id, marketerrors.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return fmt.Errorf("delete job %s: %w", id, marketerrors.ErrJobNotFound)
	}
	delete(r.jobs, id)
	return nil
}

// FindBid returns the bid placed by email on jobID, if any
func (r *MemoryRepo) FindBid(ctx context.Context, email, jobID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, bid := range r.bids {
		if bid.Email == email && bid.JobID == jobID {
			return bid, nil
		}
	}
	return model.Bid{}, fmt.Errorf("find bid for %s on job %s: %w", email, jobID, marketerrors.ErrBidNotFound)
}

// InsertBid stores a new bid, rejecting a second bid by the same seller on
// the same job. The uniqueness check and the insert run under one lock, so
// concurrent duplicates cannot both succeed.
func (r *MemoryRepo) InsertBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bids {
		if existing.Email == bid.Email && existing.JobID == bid.JobID {
			return model.Bid{}, fmt.Errorf("insert bid for %s on job %s: %w", bid.Email, bid.JobID, marketerrors.ErrDuplicateBid)
		}
	}

	if bid.ID.IsZero() {
		bid.ID = primitive.NewObjectID()
	}
	r.bids[bid.ID.Hex()] = bid
	return bid, nil
}

// IncrementBidCount adjusts a job's bid counter. A missing job is not an
// error: the bid's job reference is not enforced, matching an update that
// matches zero documents.
func (r *MemoryRepo) IncrementBidCount(ctx context.Context, jobID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return nil
	}
	job.BidCount += delta
	r.jobs[jobID] = job
	return nil
}

// BidsBySeller returns every bid placed by the given seller email
func (r *MemoryRepo) BidsBySeller(ctx context.Context, email string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, bid := range r.bids {
		if bid.Email == email {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}

// BidsByBuyer returns every bid received on jobs owned by the given buyer email
func (r *MemoryRepo) BidsByBuyer(ctx context.Context, email string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, bid := range r.bids {
		if bid.BuyerEmail == email {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}

// SetBidStatus unconditionally overwrites one bid's status and returns the
// updated bid. Setting the current value again is a successful no-op.
func (r *MemoryRepo) SetBidStatus(ctx context.Context, id, status string) (model.Bid, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return model.Bid{}, fmt.Errorf("set status for bid %s: %w", id, marketerrors.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("set status for bid %s: %w", id, marketerrors.ErrBidNotFound)
	}
	bid.Status = status
	r.bids[id] = bid
	return bid, nil
}
