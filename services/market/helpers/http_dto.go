package helpers

import (
	model "solosphere-server/internal/models"
)

// Request/Response DTOs

type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type BuyerPayload struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type SaveJobRequest struct {
	Title       string       `json:"job_title" binding:"required"`
	Category    string       `json:"category" binding:"required"`
	Deadline    string       `json:"deadline" binding:"required"`
	MinPrice    float64      `json:"min_price" binding:"required,gt=0"`
	MaxPrice    float64      `json:"max_price" binding:"required,gt=0"`
	Description string       `json:"description"`
	Buyer       BuyerPayload `json:"buyer" binding:"required"`
}

// ToModel converts the request payload into a job document
func (r SaveJobRequest) ToModel() model.Job {
	return model.Job{
		Title:       r.Title,
		Category:    r.Category,
		Deadline:    r.Deadline,
		MinPrice:    r.MinPrice,
		MaxPrice:    r.MaxPrice,
		Description: r.Description,
		Buyer: model.Buyer{
			Email: r.Buyer.Email,
			Name:  r.Buyer.Name,
			Photo: r.Buyer.Photo,
		},
	}
}

type PlaceBidRequest struct {
	JobID      string  `json:"jobId" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Comment    string  `json:"comment"`
	Status     string  `json:"status"`
	JobTitle   string  `json:"job_title"`
	Deadline   string  `json:"deadline"`
	Category   string  `json:"category"`
	BuyerEmail string  `json:"buyer_email"`
}

// ToModel converts the request payload into a bid document
func (r PlaceBidRequest) ToModel() model.Bid {
	return model.Bid{
		JobID:      r.JobID,
		Email:      r.Email,
		Price:      r.Price,
		Comment:    r.Comment,
		Status:     r.Status,
		JobTitle:   r.JobTitle,
		Deadline:   r.Deadline,
		Category:   r.Category,
		BuyerEmail: r.BuyerEmail,
	}
}

type UpdateBidStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
