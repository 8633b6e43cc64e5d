package models

// PacketViewModel records one visit to a packet's public page. Rows are
// append-only and only ever counted, never read back individually.
type PacketViewModel struct {
	AppendBase
	PacketID  string `json:"packet_id" gorm:"type:char(36);index;not null"`
	UserAgent string `json:"user_agent" gorm:"type:varchar(512)"`
	// IPHash is a salted SHA-256 digest of the client IP, kept for rough
	// uniqueness without storing the address itself.
	IPHash string `json:"ip_hash" gorm:"type:char(64)"`
}

func (PacketViewModel) TableName() string { return "packet_views" }
