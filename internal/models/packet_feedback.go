package models

// PacketFeedbackModel is a visitor-submitted rating and comment tied to a
// packet. Append-only.
type PacketFeedbackModel struct {
	AppendBase
	PacketID  string `json:"packet_id"  gorm:"type:char(36);index;not null"`
	AgentName string `json:"agent_name" gorm:"not null"`
	Feedback  string `json:"feedback"   gorm:"type:longtext;not null"`
	Rating    int    `json:"rating"     gorm:"not null"` // 1..5, enforced at the service boundary
}

func (PacketFeedbackModel) TableName() string { return "packet_feedback" }
