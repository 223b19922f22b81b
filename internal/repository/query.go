package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sort directions accepted by the job listing
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// JobListQuery describes one page of the public job listing. Page is
// 1-indexed; Page and Size must be sanitized to positive values before the
// query is built.
type JobListQuery struct {
	Search   string
	Category string
	Sort     string
	Page     int64
	Size     int64
}

// Filter builds the match document shared by the listing and its companion
// count. The title is matched as a case-insensitive regex; an empty search
// is an empty pattern and matches every title, which is the documented
// contract of the listing.
func (q JobListQuery) Filter() bson.M {
	filter := bson.M{
		"job_title": bson.M{"$regex": q.Search, "$options": "i"},
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	return filter
}

// Skip converts the 1-indexed page to a zero-indexed record offset
func (q JobListQuery) Skip() int64 {
	return (q.Page - 1) * q.Size
}

// FindOptions builds pagination and ordering options. Without an explicit
// sort direction the store-default order is used, which is not guaranteed
// stable.
func (q JobListQuery) FindOptions() *options.FindOptions {
	opts := options.Find().SetSkip(q.Skip()).SetLimit(q.Size)
	switch q.Sort {
	case SortAsc:
		opts.SetSort(bson.D{{Key: "deadline", Value: 1}})
	case SortDesc:
		opts.SetSort(bson.D{{Key: "deadline", Value: -1}})
	}
	return opts
}
