package view

import (
	"context"
	"time"

	"github.com/stewartjane/packet-core/internal/models"
	"github.com/stewartjane/packet-core/internal/pkg/redisq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const popTimeout = 5 * time.Second

// Worker drains queued view events into the database. Events that fail to
// insert are logged and dropped; lost views are acceptable.
type Worker struct {
	db     *gorm.DB
	queue  *redisq.Queue
	logger *zap.Logger
}

func NewWorker(db *gorm.DB, queue *redisq.Queue, logger *zap.Logger) *Worker {
	return &Worker{db: db, queue: queue, logger: logger}
}

// Run consumes the queue until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		var event Event
		ok, err := w.queue.Pop(ctx, popTimeout, &event)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Warn("view queue pop failed", zap.Error(err))
			// Back off briefly so a down Redis does not spin the loop.
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}
		if !ok {
			continue
		}

		if err := w.db.Create(&models.PacketViewModel{
			PacketID:  event.PacketID,
			UserAgent: event.UserAgent,
			IPHash:    event.IPHash,
		}).Error; err != nil {
			w.logger.Warn("view insert failed, dropping event",
				zap.String("packet_id", event.PacketID), zap.Error(err))
		}
	}
}

// CountForPacket returns the number of recorded views for a packet.
func CountForPacket(db *gorm.DB, packetID string) (int64, error) {
	var count int64
	err := db.Model(&models.PacketViewModel{}).
		Where("packet_id = ?", packetID).
		Count(&count).Error
	return count, err
}
