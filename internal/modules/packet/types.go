package packet

import "github.com/stewartjane/packet-core/internal/models"

// CreatePacketDTO is the request body for creating a packet.
type CreatePacketDTO struct {
	Slug          string  `json:"slug" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Subtitle      *string `json:"subtitle"`
	Description   *string `json:"description"`
	CoverImageURL *string `json:"cover_image_url"`
	AgentID       *string `json:"agent_id"`
}

// UpdatePacketDTO carries partial updates; nil fields are left untouched.
// An empty-string AgentID clears the assignment.
type UpdatePacketDTO struct {
	Slug          *string `json:"slug"`
	Title         *string `json:"title"`
	Subtitle      *string `json:"subtitle"`
	Description   *string `json:"description"`
	CoverImageURL *string `json:"cover_image_url"`
	AgentID       *string `json:"agent_id"`
}

// ItemDTO is one entry in a replace-items request. The stored position is the
// item's index in the submitted list; the Order field is accepted for
// compatibility but the sequence wins.
type ItemDTO struct {
	Type    models.ItemType `json:"type"`
	Label   string          `json:"label"`
	URL     *string         `json:"url"`
	Content *string         `json:"content"`
	Order   int             `json:"order"`
}

// ReplaceItemsDTO is the request body for the full item rewrite.
type ReplaceItemsDTO struct {
	PacketID string    `json:"packet_id" binding:"required"`
	Items    []ItemDTO `json:"items"`
}

// WithCounts is a packet together with its view and feedback totals.
type WithCounts struct {
	models.PacketModel
	ViewCount     int64 `json:"view_count"`
	FeedbackCount int64 `json:"feedback_count"`
}
