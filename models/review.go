package models

import "time"

// Review is a customer testimonial shown in the storefront slideshow.
// Only active reviews are served publicly.
type Review struct {
	ID           string    `bson:"id" json:"id"`
	CustomerName string    `bson:"customerName" json:"customerName"`
	Rating       int       `bson:"rating" json:"rating"`
	Review       string    `bson:"review" json:"review"`
	Image        string    `bson:"image" json:"image"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	Order        int       `bson:"order" json:"order"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReviewOrderUpdate is one entry of a bulk reorder request.
type ReviewOrderUpdate struct {
	ReviewID string `json:"reviewId" binding:"required"`
	Order    int    `json:"order"`
}
