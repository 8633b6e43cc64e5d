package view

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/stewartjane/packet-core/internal/models"
	"github.com/stewartjane/packet-core/internal/pkg/redisq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QueueKey is the Redis list the view events wait in.
const QueueKey = "pk:views:queue"

const enqueueTimeout = 2 * time.Second

// Event is one recorded page visit, queued for asynchronous insertion.
type Event struct {
	PacketID  string    `json:"packet_id"`
	UserAgent string    `json:"user_agent"`
	IPHash    string    `json:"ip_hash"`
	At        time.Time `json:"at"`
}

// Recorder accepts view events and hands them off without ever blocking or
// failing the page render that produced them. Events go through the Redis
// queue when one is configured, and fall back to a direct detached insert
// otherwise.
type Recorder struct {
	db     *gorm.DB
	queue  *redisq.Queue
	salt   string
	logger *zap.Logger
}

func NewRecorder(db *gorm.DB, queue *redisq.Queue, salt string, logger *zap.Logger) *Recorder {
	return &Recorder{db: db, queue: queue, salt: salt, logger: logger}
}

// Record fires off one view event. It returns immediately; a failure is
// logged and the view dropped.
func (r *Recorder) Record(packetID, userAgent, clientIP string) {
	event := Event{
		PacketID:  packetID,
		UserAgent: userAgent,
		IPHash:    HashIP(r.salt, clientIP),
		At:        time.Now(),
	}

	go func() {
		if r.queue != nil {
			ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
			err := r.queue.Push(ctx, event)
			cancel()
			if err == nil {
				return
			}
			r.logger.Warn("view enqueue failed, inserting directly", zap.Error(err))
		}
		if err := r.insert(event); err != nil {
			r.logger.Warn("view insert failed, dropping", zap.Error(err))
		}
	}()
}

func (r *Recorder) insert(event Event) error {
	return r.db.Create(&models.PacketViewModel{
		PacketID:  event.PacketID,
		UserAgent: event.UserAgent,
		IPHash:    event.IPHash,
	}).Error
}

// HashIP produces the salted one-way digest stored in place of the raw
// client address.
func HashIP(salt, ip string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(salt + ip))
	return hex.EncodeToString(sum[:])
}
