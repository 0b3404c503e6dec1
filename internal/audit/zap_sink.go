package audit

import (
	"go.uber.org/zap"

	"fitdesk/internal/permissions"
)

// ZapSink writes access decisions to the service log. In production it emits
// one terse Info line; otherwise a verbose Debug line with every field.
type ZapSink struct {
	log        *zap.Logger
	production bool
}

func NewZapSink(log *zap.Logger, production bool) *ZapSink {
	return &ZapSink{log: log.Named("audit"), production: production}
}

func (s *ZapSink) Record(e permissions.AuditLogEntry) error {
	if s.production {
		s.log.Info("permission check",
			zap.String("actor", e.ActorID),
			zap.String("action", e.Action),
			zap.String("result", string(e.Result)),
		)
		return nil
	}
	s.log.Debug("permission check",
		zap.Time("at", e.Timestamp),
		zap.String("request_id", e.RequestID),
		zap.String("actor", e.ActorID),
		zap.String("role", string(e.Role)),
		zap.String("department", e.Role.Department()),
		zap.String("action", e.Action),
		zap.String("resource", e.Resource),
		zap.String("result", string(e.Result)),
		zap.String("reason", e.Reason),
	)
	return nil
}
