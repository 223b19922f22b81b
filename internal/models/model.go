package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Buyer holds the identity of the user who posted a job. The email is
// the ownership key for every buyer-scoped query; it never changes after
// the job is created.
type Buyer struct {
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name" json:"name"`
	Photo string `bson:"photo" json:"photo"`
}

// Job represents a posted task that sellers can bid on
type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"job_title" json:"job_title"`
	Category    string             `bson:"category" json:"category"`
	Deadline    string             `bson:"deadline" json:"deadline"`
	MinPrice    float64            `bson:"min_price" json:"min_price"`
	MaxPrice    float64            `bson:"max_price" json:"max_price"`
	Description string             `bson:"description" json:"description"`
	Buyer       Buyer              `bson:"buyer" json:"buyer"`
	BidCount    int                `bson:"bid_count" json:"bid_count"`
}

// Bid represents one seller's offer on one job. Job fields are
// denormalized onto the bid so owner-side listings need no join.
type Bid struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	JobID      string             `bson:"jobId" json:"jobId"`
	Email      string             `bson:"email" json:"email"`
	Status     string             `bson:"status" json:"status"`
	JobTitle   string             `bson:"job_title" json:"job_title"`
	Deadline   string             `bson:"deadline" json:"deadline"`
	Price      float64            `bson:"price" json:"price"`
	Category   string             `bson:"category" json:"category"`
	Comment    string             `bson:"comment" json:"comment"`
	BuyerEmail string             `bson:"buyer_email" json:"buyer_email"`
}

// Recognized bid statuses. The server stores whatever status the caller
// sends; these constants are the values the client actually uses.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusComplete   = "Complete"
	StatusRejected   = "Rejected"
)
