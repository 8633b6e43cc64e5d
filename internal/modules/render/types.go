package render

import "time"

// AgentCard is the agent block shown under the packet hero.
type AgentCard struct {
	Name        string  `json:"name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	HeadshotURL *string `json:"headshot_url"`
}

// DescriptionView carries the full description, its sentence-capped preview,
// and the parsed blocks of each.
type DescriptionView struct {
	Full          string  `json:"full"`
	Preview       string  `json:"preview"`
	HasMore       bool    `json:"has_more"`
	FullBlocks    []Block `json:"full_blocks"`
	PreviewBlocks []Block `json:"preview_blocks"`
}

// ItemView is one packet item prepared for display. URL is set for file and
// link items, Blocks for text items, and PreviewKind tells the viewer whether
// a file can be embedded inline.
type ItemView struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Label       []Span  `json:"label"`
	URL         *string `json:"url,omitempty"`
	Blocks      []Block `json:"blocks,omitempty"`
	PreviewKind string  `json:"preview_kind,omitempty"`
}

// Card is one entry on the public browse page.
type Card struct {
	Slug      string    `json:"slug"`
	Title     []Span    `json:"title"`
	Subtitle  []Span    `json:"subtitle,omitempty"`
	CoverURL  *string   `json:"cover_url"`
	Sold      bool      `json:"sold"`
	AgentName string    `json:"agent_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Page is the full view-model for the public packet page.
type Page struct {
	Slug        string           `json:"slug"`
	Title       []Span           `json:"title"`
	Subtitle    []Span           `json:"subtitle,omitempty"`
	CoverURL    *string          `json:"cover_url"`
	Sold        bool             `json:"sold"`
	Agent       *AgentCard       `json:"agent"`
	Description *DescriptionView `json:"description"`
	Items       []ItemView       `json:"items"`
}
