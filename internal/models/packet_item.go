package models

// ItemType is the kind of widget a packet item renders as.
type ItemType string

const (
	ItemFile ItemType = "file"
	ItemLink ItemType = "link"
	ItemText ItemType = "text"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	return t == ItemFile || t == ItemLink || t == ItemText
}

// PacketItemModel is one ordered entry within a packet. Items are always
// rewritten wholesale on save; Position values form a contiguous zero-based
// sequence within a packet after every rewrite.
type PacketItemModel struct {
	AppendBase
	PacketID string   `json:"packet_id" gorm:"type:char(36);index;not null"`
	Type     ItemType `json:"type"      gorm:"type:varchar(16);not null"`
	Label    string   `json:"label"     gorm:"not null"`
	URL      *string  `json:"url"`
	Content  *string  `json:"content"   gorm:"type:longtext"`
	// "order" is a reserved word in MySQL, so the column is named position.
	Position int `json:"order" gorm:"column:position;not null"`
}

func (PacketItemModel) TableName() string { return "packet_items" }
