package audit

import (
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fitdesk/internal/models"
	"fitdesk/internal/permissions"
)

var (
	ErrBufferFull = errors.New("audit buffer full")
	ErrClosed     = errors.New("audit sink closed")
)

// GormSink persists entries to audit_logs from a background writer so that
// Record never waits on the database.
type GormSink struct {
	db  *gorm.DB
	log *zap.Logger

	mu      sync.RWMutex
	closed  bool
	entries chan permissions.AuditLogEntry
	done    chan struct{}
}

func NewGormSink(db *gorm.DB, log *zap.Logger, buffer int) *GormSink {
	if buffer <= 0 {
		buffer = 256
	}
	s := &GormSink{
		db:      db,
		log:     log.Named("audit_store"),
		entries: make(chan permissions.AuditLogEntry, buffer),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// Record queues the entry. A full buffer drops the entry.
func (s *GormSink) Record(e permissions.AuditLogEntry) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	select {
	case s.entries <- e:
		return nil
	default:
		return ErrBufferFull
	}
}

// Close stops accepting entries and waits until queued ones are written.
func (s *GormSink) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.entries)
	s.mu.Unlock()
	<-s.done
}

func (s *GormSink) run() {
	defer close(s.done)
	for e := range s.entries {
		row := ToRow(e)
		if err := s.db.Create(&row).Error; err != nil {
			s.log.Warn("persist audit entry", zap.Error(err), zap.String("action", e.Action))
		}
	}
}

// ToRow converts a decision into its audit_logs row.
func ToRow(e permissions.AuditLogEntry) models.AuditLog {
	meta, _ := json.Marshal(map[string]string{"department": e.Role.Department()})
	return models.AuditLog{
		RequestID: e.RequestID,
		ActorID:   e.ActorID,
		Role:      string(e.Role),
		Action:    e.Action,
		Resource:  e.Resource,
		Result:    string(e.Result),
		Reason:    e.Reason,
		Metadata:  datatypes.JSON(meta),
		CreatedAt: e.Timestamp,
	}
}
