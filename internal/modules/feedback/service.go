package feedback

import (
	"errors"
	"math"
	"strings"

	"github.com/stewartjane/packet-core/internal/models"
	"github.com/stewartjane/packet-core/internal/pkg/pagination"
	"github.com/stewartjane/packet-core/internal/pkg/response"
	"gorm.io/gorm"
)

var (
	errRatingRange  = errors.New("rating must be between 1 and 5")
	errEmptyField   = errors.New("agent_name and feedback are required")
	errNoSuchPacket = errors.New("packet not found")
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Submit validates and stores one feedback entry. There is intentionally no
// rate limit or duplicate guard; visitors may submit any number of entries.
func (s *Service) Submit(dto *SubmitFeedbackDTO) error {
	if strings.TrimSpace(dto.AgentName) == "" || strings.TrimSpace(dto.Feedback) == "" {
		return errEmptyField
	}
	if dto.Rating < 1 || dto.Rating > 5 {
		return errRatingRange
	}

	var count int64
	if err := s.db.Model(&models.PacketModel{}).Where("id = ?", dto.PacketID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errNoSuchPacket
	}

	return s.db.Create(&models.PacketFeedbackModel{
		PacketID:  dto.PacketID,
		AgentName: strings.TrimSpace(dto.AgentName),
		Feedback:  dto.Feedback,
		Rating:    dto.Rating,
	}).Error
}

// ListForPacket returns a packet's feedback newest-first.
func (s *Service) ListForPacket(packetID string) ([]models.PacketFeedbackModel, error) {
	var rows []models.PacketFeedbackModel
	err := s.db.
		Where("packet_id = ?", packetID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// ListForPacketPaged returns one page of a packet's feedback newest-first.
func (s *Service) ListForPacketPaged(packetID string, q pagination.Query) ([]models.PacketFeedbackModel, response.Pagination, error) {
	var rows []models.PacketFeedbackModel
	query := s.db.Model(&models.PacketFeedbackModel{}).
		Where("packet_id = ?", packetID).
		Order("created_at DESC")
	meta, err := pagination.Paginate(query, q, &rows)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return rows, meta, nil
}

// StatsForPacket aggregates a packet's feedback: total, average rating to one
// decimal, five-star count, and the newest submission time.
func (s *Service) StatsForPacket(packetID string) (Stats, error) {
	rows, err := s.ListForPacket(packetID)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Count: int64(len(rows))}
	if len(rows) == 0 {
		return stats, nil
	}

	sum := 0
	for _, r := range rows {
		sum += r.Rating
		if r.Rating == 5 {
			stats.FiveStarCount++
		}
	}
	stats.AverageRating = math.Round(float64(sum)/float64(len(rows))*10) / 10
	// rows are newest-first
	stats.MostRecent = &rows[0].CreatedAt
	return stats, nil
}

// CountForPacket returns the number of feedback rows for a packet.
func (s *Service) CountForPacket(packetID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.PacketFeedbackModel{}).
		Where("packet_id = ?", packetID).
		Count(&count).Error
	return count, err
}
