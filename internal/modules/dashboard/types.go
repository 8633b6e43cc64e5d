package dashboard

import "time"

// Row is one dashboard line.
type Row struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Sold          bool       `json:"sold"`
	SoldAt        *time.Time `json:"sold_at"`
	ViewCount     int64      `json:"view_count"`
	FeedbackCount int64      `json:"feedback_count"`
	CreatedAt     time.Time  `json:"created_at"`
}
