package models

import "time"

// PacketModel is a shareable bundle of property documents, links, and text
// published at a unique slug.
type PacketModel struct {
	Base
	Slug          string      `json:"slug"            gorm:"uniqueIndex;not null"`
	Title         string      `json:"title"           gorm:"not null"`
	Subtitle      *string     `json:"subtitle"`
	Description   *string     `json:"description"     gorm:"type:longtext"`
	CoverImageURL *string     `json:"cover_image_url"`
	AgentID       *string     `json:"agent_id"        gorm:"type:char(36);index"`
	Agent         *AgentModel `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
	SoldAt        *time.Time  `json:"sold_at"`

	Items []PacketItemModel `json:"items,omitempty" gorm:"foreignKey:PacketID"`
}

func (PacketModel) TableName() string { return "packets" }

// IsSold reports whether the packet has been archived via mark-sold.
func (p PacketModel) IsSold() bool { return p.SoldAt != nil }
