package models

// AgentModel is a real-estate professional shown on a packet's public page.
// Optional contact fields are pointers so an absent value stays null through
// a create/read round trip.
type AgentModel struct {
	Base
	Name        string  `json:"name"         gorm:"not null"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	HeadshotURL *string `json:"headshot_url"`
}

func (AgentModel) TableName() string { return "agents" }
