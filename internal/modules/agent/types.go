package agent

// CreateAgentDTO is the request body for creating an agent. Optional fields
// left out of the request stay null.
type CreateAgentDTO struct {
	Name        string  `json:"name" binding:"required"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	HeadshotURL *string `json:"headshot_url"`
}

// UpdateAgentDTO carries partial updates; nil fields are left untouched.
type UpdateAgentDTO struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	HeadshotURL *string `json:"headshot_url"`
}
