package packet

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stewartjane/packet-core/internal/models"
	"github.com/stewartjane/packet-core/internal/modules/view"
	"gorm.io/gorm"
)

var (
	errSlugTaken   = errors.New("slug already exists")
	errInvalidSlug = errors.New("slug may only contain letters, digits, hyphens, and underscores")
	errInvalidItem = errors.New("invalid item")
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Create inserts a new packet and returns its id. The slug must be URL-safe
// and globally unique.
func (s *Service) Create(dto *CreatePacketDTO) (string, error) {
	slug := strings.TrimSpace(dto.Slug)
	if !validSlug(slug) {
		return "", errInvalidSlug
	}

	var count int64
	if err := s.db.Model(&models.PacketModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", errSlugTaken
	}

	p := models.PacketModel{
		Slug:          slug,
		Title:         dto.Title,
		Subtitle:      dto.Subtitle,
		Description:   dto.Description,
		CoverImageURL: dto.CoverImageURL,
		AgentID:       normalizeAgentID(dto.AgentID),
	}
	if err := s.db.Create(&p).Error; err != nil {
		// A concurrent create can still trip the unique index.
		if isDuplicateKey(err) {
			return "", errSlugTaken
		}
		return "", err
	}
	return p.ID, nil
}

// GetByID returns the packet with its agent and ordered items, or nil.
func (s *Service) GetByID(id string) (*models.PacketModel, error) {
	return s.getOne("id = ?", id)
}

// GetBySlug looks a packet up by its public slug. The match is exact and
// case-sensitive regardless of column collation.
func (s *Service) GetBySlug(slug string) (*models.PacketModel, error) {
	p, err := s.getOne("slug = ?", slug)
	if err != nil || p == nil {
		return p, err
	}
	if p.Slug != slug {
		return nil, nil
	}
	return p, nil
}

func (s *Service) getOne(query string, arg string) (*models.PacketModel, error) {
	var p models.PacketModel
	err := s.db.
		Preload("Agent").
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		First(&p, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ListNewest returns all packets newest-first with their agents. This is the
// public browse surface, so no counts are attached.
func (s *Service) ListNewest() ([]models.PacketModel, error) {
	var packets []models.PacketModel
	err := s.db.Preload("Agent").Order("created_at DESC").Find(&packets).Error
	return packets, err
}

// List returns all packets newest-first. When withCounts is set, each packet
// carries its view and feedback totals, fetched by a count query per packet.
func (s *Service) List(withCounts bool) ([]WithCounts, error) {
	var packets []models.PacketModel
	if err := s.db.Order("created_at DESC").Find(&packets).Error; err != nil {
		return nil, err
	}

	out := make([]WithCounts, len(packets))
	for i, p := range packets {
		out[i] = WithCounts{PacketModel: p}
		if !withCounts {
			continue
		}
		views, err := view.CountForPacket(s.db, p.ID)
		if err != nil {
			return nil, err
		}
		out[i].ViewCount = views
		if err := s.db.Model(&models.PacketFeedbackModel{}).
			Where("packet_id = ?", p.ID).
			Count(&out[i].FeedbackCount).Error; err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update applies the non-nil DTO fields. Returns nil when the packet is absent.
func (s *Service) Update(id string, dto *UpdatePacketDTO) (*models.PacketModel, error) {
	var p models.PacketModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Slug != nil {
		slug := strings.TrimSpace(*dto.Slug)
		if !validSlug(slug) {
			return nil, errInvalidSlug
		}
		if slug != p.Slug {
			var count int64
			if err := s.db.Model(&models.PacketModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, errSlugTaken
			}
			updates["slug"] = slug
		}
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Subtitle != nil {
		updates["subtitle"] = *dto.Subtitle
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.CoverImageURL != nil {
		updates["cover_image_url"] = *dto.CoverImageURL
	}
	if dto.AgentID != nil {
		updates["agent_id"] = normalizeAgentID(dto.AgentID)
	}
	if len(updates) == 0 {
		return &p, nil
	}
	if err := s.db.Model(&p).Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, errSlugTaken
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes a packet and every item, view, and feedback row that
// references it, in one transaction. Returns gorm.ErrRecordNotFound when the
// packet is absent.
func (s *Service) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		res := tx.Delete(&models.PacketModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// MarkSold archives a packet: its items, views, and feedback are purged and
// the display fields cleared, while title and slug persist as a record of the
// sale. The whole operation is one transaction and is idempotent in effect.
func (s *Service) MarkSold(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// Existence is checked up front rather than read off RowsAffected:
		// MySQL reports zero affected rows for an update that changes
		// nothing, which a repeated mark-sold within the same millisecond
		// would trigger.
		var count int64
		if err := tx.Model(&models.PacketModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		return tx.Model(&models.PacketModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"sold_at":         time.Now(),
				"subtitle":        nil,
				"description":     nil,
				"cover_image_url": nil,
			}).Error
	})
}

// ReplaceItems rewrites a packet's item list wholesale: every existing item
// is deleted and the submitted list inserted with positions assigned from the
// input order. Delete and insert share a transaction so a concurrent reader
// never observes a half-written list.
func (s *Service) ReplaceItems(packetID string, items []ItemDTO) error {
	var count int64
	if err := s.db.Model(&models.PacketModel{}).Where("id = ?", packetID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}

	rows := make([]models.PacketItemModel, len(items))
	for i, item := range items {
		if err := validateItem(i, item); err != nil {
			return err
		}
		rows[i] = models.PacketItemModel{
			PacketID: packetID,
			Type:     item.Type,
			Label:    strings.TrimSpace(item.Label),
			URL:      item.URL,
			Content:  item.Content,
			Position: i,
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PacketItemModel{}, "packet_id = ?", packetID).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func validateItem(i int, item ItemDTO) error {
	if !item.Type.Valid() {
		return fmt.Errorf("%w %d: unknown type %q", errInvalidItem, i, item.Type)
	}
	if strings.TrimSpace(item.Label) == "" {
		return fmt.Errorf("%w %d: label is required", errInvalidItem, i)
	}
	switch item.Type {
	case models.ItemFile, models.ItemLink:
		if item.URL == nil || strings.TrimSpace(*item.URL) == "" {
			return fmt.Errorf("%w %d: url is required for %s items", errInvalidItem, i, item.Type)
		}
	case models.ItemText:
		if item.Content == nil || strings.TrimSpace(*item.Content) == "" {
			return fmt.Errorf("%w %d: content is required for text items", errInvalidItem, i)
		}
	}
	return nil
}

func deleteChildren(tx *gorm.DB, packetID string) error {
	if err := tx.Delete(&models.PacketItemModel{}, "packet_id = ?", packetID).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.PacketViewModel{}, "packet_id = ?", packetID).Error; err != nil {
		return err
	}
	return tx.Delete(&models.PacketFeedbackModel{}, "packet_id = ?", packetID).Error
}

func normalizeAgentID(id *string) *string {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	return &trimmed
}

func validSlug(slug string) bool {
	if slug == "" {
		return false
	}
	for _, ch := range slug {
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == '-' || ch == '_':
		default:
			return false
		}
	}
	return true
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	// sqlite in tests reports unique violations as plain strings
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
