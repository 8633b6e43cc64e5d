package agent

import (
	"errors"
	"strings"

	"github.com/stewartjane/packet-core/internal/models"
	"gorm.io/gorm"
)

var errNameRequired = errors.New("name is required")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Create inserts a new agent and returns its id.
func (s *Service) Create(dto *CreateAgentDTO) (string, error) {
	if strings.TrimSpace(dto.Name) == "" {
		return "", errNameRequired
	}
	a := models.AgentModel{
		Name:        strings.TrimSpace(dto.Name),
		Email:       dto.Email,
		Phone:       dto.Phone,
		HeadshotURL: dto.HeadshotURL,
	}
	if err := s.db.Create(&a).Error; err != nil {
		return "", err
	}
	return a.ID, nil
}

// GetByID returns the agent, or nil when it does not exist.
func (s *Service) GetByID(id string) (*models.AgentModel, error) {
	var a models.AgentModel
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// List returns all agents ordered by name.
func (s *Service) List() ([]models.AgentModel, error) {
	var agents []models.AgentModel
	err := s.db.Order("name ASC").Find(&agents).Error
	return agents, err
}

// Update applies the non-nil DTO fields. Returns nil when the agent is absent.
func (s *Service) Update(id string, dto *UpdateAgentDTO) (*models.AgentModel, error) {
	a, err := s.GetByID(id)
	if err != nil || a == nil {
		return a, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		if strings.TrimSpace(*dto.Name) == "" {
			return nil, errNameRequired
		}
		updates["name"] = strings.TrimSpace(*dto.Name)
	}
	if dto.Email != nil {
		updates["email"] = *dto.Email
	}
	if dto.Phone != nil {
		updates["phone"] = *dto.Phone
	}
	if dto.HeadshotURL != nil {
		updates["headshot_url"] = *dto.HeadshotURL
	}
	if len(updates) == 0 {
		return a, nil
	}
	return a, s.db.Model(a).Updates(updates).Error
}

// Delete removes the agent. Packets that reference it keep existing with
// their agent_id cleared; both writes happen in one transaction. Returns
// gorm.ErrRecordNotFound when the agent is absent.
func (s *Service) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PacketModel{}).
			Where("agent_id = ?", id).
			Update("agent_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.AgentModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
