package feedback

import "time"

// SubmitFeedbackDTO is the public feedback submission body. Rating bounds are
// re-checked in the service so malformed rows never reach the store.
type SubmitFeedbackDTO struct {
	PacketID  string `json:"packet_id" binding:"required"`
	AgentName string `json:"agent_name" binding:"required"`
	Feedback  string `json:"feedback" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
}

// Stats summarizes the feedback a packet has received.
type Stats struct {
	Count         int64      `json:"count"`
	AverageRating float64    `json:"average_rating"` // rounded to one decimal
	FiveStarCount int64      `json:"five_star_count"`
	MostRecent    *time.Time `json:"most_recent"`
}
