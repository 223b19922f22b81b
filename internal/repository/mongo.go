package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"solosphere-server/internal/marketerrors"
	model "solosphere-server/internal/models"
)

const opTimeout = 5 * time.Second

// ConnectMongo establishes and verifies a MongoDB connection.
// The returned client must be closed with DisconnectMongo on shutdown.
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// DisconnectMongo closes the MongoDB connection
func DisconnectMongo(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return client.Disconnect(ctx)
}

// MongoRepo is the production MarketDB backed by the jobs and bids collections
type MongoRepo struct {
	jobs *mongo.Collection
	bids *mongo.Collection
}

// NewMongoRepo creates a MarketDB over the given database
func NewMongoRepo(client *mongo.Client, dbName string) *MongoRepo {
	db := client.Database(dbName)
	return &MongoRepo{
		jobs: db.Collection("jobs"),
		bids: db.Collection("bids"),
	}
}

// EnsureIndexes creates the unique (email, jobId) index on bids. The index
// backstops the duplicate-bid pre-check: two concurrent bids from the same
// seller cannot both insert.
func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.bids.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "jobId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create bids index: %w", err)
	}
	return nil
}

// InsertJob stores a new job and assigns its identifier
func (r *MongoRepo) InsertJob(ctx context.Context, job model.Job) (model.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := r.jobs.InsertOne(ctx, job)
	if err != nil {
		return model.Job{}, fmt.Errorf("insert job: %w", err)
	}
	job.ID = result.InsertedID.(primitive.ObjectID)
	return job, nil
}

// GetJob returns one job by its identifier
func (r *MongoRepo) GetJob(ctx context.Context, id string) (model.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Job{}, fmt.Errorf("get job %s: %w", id, marketerrors.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var job model.Job
	err = r.jobs.FindOne(ctx, bson.M{"_id": oid}).Decode(&job)
	if err == mongo.ErrNoDocuments {
		return model.Job{}, fmt.Errorf("get job %s: %w", id, marketerrors.ErrJobNotFound)
	}
	if err != nil {
		return model.Job{}, fmt.Errorf("get job %s: %w", id, err)
	}
	return job, nil
}

// ListJobs returns every stored job
func (r *MongoRepo) ListJobs(ctx context.Context) ([]model.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.jobs.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	jobs := make([]model.Job, 0)
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// ListJobsPage returns one filtered, sorted page of the job listing
func (r *MongoRepo) ListJobsPage(ctx context.Context, q JobListQuery) ([]model.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.jobs.Find(ctx, q.Filter(), q.FindOptions())
	if err != nil {
		return nil, fmt.Errorf("list jobs page %d: %w", q.Page, err)
	}
	defer cursor.Close(ctx)

	jobs := make([]model.Job, 0)
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("list jobs page %d: %w", q.Page, err)
	}
	return jobs, nil
}

// CountJobs returns the total number of jobs matching the listing filter
func (r *MongoRepo) CountJobs(ctx context.Context, q JobListQuery) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	count, err := r.jobs.CountDocuments(ctx, q.Filter())
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return count, nil
}

// JobsByBuyer returns every job posted by the given buyer email
func (r *MongoRepo) JobsByBuyer(ctx context.Context, email string) ([]model.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.jobs.Find(ctx, bson.M{"buyer.email": email})
	if err != nil {
		return nil, fmt.Errorf("jobs by buyer %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	jobs := make([]model.Job, 0)
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("jobs by buyer %s: %w", email, err)
	}
	return jobs, nil
}

// ReplaceJob overwrites the stored job's fields, upserting the document if
// it does not exist. bid_count is deliberately left out of the update so a
// replace cannot reset the counter.
func (r *MongoRepo) ReplaceJob(ctx context.Context, id string, job model.Job) (model.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Job{}, fmt.Errorf("replace job %s: %w", id, marketerrors.ErrInvalidInput)
	}

	updateCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"job_title":   job.Title,
		"category":    job.Category,
		"deadline":    job.Deadline,
		"min_price":   job.MinPrice,
		"max_price":   job.MaxPrice,
		"description": job.Description,
		"buyer":       job.Buyer,
	}}
	_, err = r.jobs.UpdateOne(updateCtx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return model.Job{}, fmt.Errorf("replace job %s: %w", id, err)
	}

	return r.GetJob(ctx, id)
}

// DeleteJob removes one job by its identifier
func (r *MongoRepo) DeleteJob(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("delete job %s: %w", id, marketerrors.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := r.jobs.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("delete job %s: %w", id, marketerrors.ErrJobNotFound)
	}
	return nil
}

// FindBid returns the bid placed by email on jobID, if any
func (r *MongoRepo) FindBid(ctx context.Context, email, jobID string) (model.Bid, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var bid model.Bid
	err := r.bids.FindOne(ctx, bson.M{"email": email, "jobId": jobID}).Decode(&bid)
	if err == mongo.ErrNoDocuments {
		return model.Bid{}, fmt.Errorf("find bid for %s on job %s: %w", email, jobID, marketerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("find bid for %s on job %s: %w", email, jobID, err)
	}
	return bid, nil
}

// InsertBid stores a new bid. A duplicate key error from the unique
// (email, jobId) index maps to ErrDuplicateBid, closing the race between
// the pre-insert duplicate check and the insert itself.
func (r *MongoRepo) InsertBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := r.bids.InsertOne(ctx, bid)
	if mongo.IsDuplicateKeyError(err) {
		return model.Bid{}, fmt.Errorf("insert bid for %s on job %s: %w", bid.Email, bid.JobID, marketerrors.ErrDuplicateBid)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("insert bid for %s on job %s: %w", bid.Email, bid.JobID, err)
	}
	bid.ID = result.InsertedID.(primitive.ObjectID)
	return bid, nil
}

// IncrementBidCount adjusts a job's bid counter with an atomic $inc.
// A jobID matching no document is not an error: the bid's job reference is
// not enforced.
func (r *MongoRepo) IncrementBidCount(ctx context.Context, jobID string, delta int) error {
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return fmt.Errorf("increment bid count for job %s: %w", jobID, marketerrors.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err = r.jobs.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"bid_count": delta}})
	if err != nil {
		return fmt.Errorf("increment bid count for job %s: %w", jobID, err)
	}
	return nil
}

// BidsBySeller returns every bid placed by the given seller email
func (r *MongoRepo) BidsBySeller(ctx context.Context, email string) ([]model.Bid, error) {
	return r.findBids(ctx, bson.M{"email": email})
}

// BidsByBuyer returns every bid received on jobs owned by the given buyer email
func (r *MongoRepo) BidsByBuyer(ctx context.Context, email string) ([]model.Bid, error) {
	return r.findBids(ctx, bson.M{"buyer_email": email})
}

func (r *MongoRepo) findBids(ctx context.Context, filter bson.M) ([]model.Bid, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.bids.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find bids: %w", err)
	}
	defer cursor.Close(ctx)

	bids := make([]model.Bid, 0)
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, fmt.Errorf("find bids: %w", err)
	}
	return bids, nil
}

// SetBidStatus unconditionally overwrites one bid's status and returns the
// updated bid
func (r *MongoRepo) SetBidStatus(ctx context.Context, id, status string) (model.Bid, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Bid{}, fmt.Errorf("set status for bid %s: %w", id, marketerrors.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var bid model.Bid
	err = r.bids.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&bid)
	if err == mongo.ErrNoDocuments {
		return model.Bid{}, fmt.Errorf("set status for bid %s: %w", id, marketerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("set status for bid %s: %w", id, err)
	}
	return bid, nil
}
