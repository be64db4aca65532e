package model

import "time"

// MenuItem represents a dish on the restaurant menu. Name, price and category
// are fixed for the session; availability and the review collection may change.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Available   bool     `json:"available"`
	PrepTime    int      `json:"prepTime"` // minutes
	ImageURL    string   `json:"imageUrl,omitempty"`
	Reviews     []Review `json:"reviews,omitempty"`
}

// Review is a single diner rating for a menu item. Reviews are append-only;
// they are never edited or removed once created.
type Review struct {
	Author    string    `json:"author"`
	Rating    int       `json:"rating"` // always within [1,5]
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClampRating coerces a rating into the valid [1,5] range.
func ClampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// RatingSummary aggregates a menu item's reviews. Average is 0 when the item
// has no reviews.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Summarise computes the running average and count over a review collection.
func Summarise(reviews []Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{}
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return RatingSummary{
		Average: float64(sum) / float64(len(reviews)),
		Count:   len(reviews),
	}
}
