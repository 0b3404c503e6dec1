package permissions

import "time"

// AuditResult is the decision recorded for an access check.
type AuditResult string

const (
	AuditAllowed AuditResult = "allowed"
	AuditDenied  AuditResult = "denied"
)

// AuditLogEntry describes one access decision.
type AuditLogEntry struct {
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
	ActorID   string      `json:"actor_id"`
	Role      Role        `json:"role"`
	Action    string      `json:"action"`
	Resource  string      `json:"resource"`
	Result    AuditResult `json:"result"`
	Reason    string      `json:"reason,omitempty"`
}

// AuditSink receives audit entries. Implementations must not block for long;
// errors are swallowed by the Auditor.
type AuditSink interface {
	Record(entry AuditLogEntry) error
}

// Auditor fans entries out to its sinks. A nil *Auditor discards everything;
// the zero value has no sinks and stamps entries with time.Now.
type Auditor struct {
	sinks []AuditSink
	now   func() time.Time
}

func NewAuditor(sinks ...AuditSink) *Auditor {
	return &Auditor{sinks: sinks, now: time.Now}
}

// LogPermissionCheck records a single decision. It never panics and never
// reports sink failures to the caller.
func (a *Auditor) LogPermissionCheck(actorID string, role Role, action, resource string, allowed bool, reason string) {
	result := AuditDenied
	if allowed {
		result = AuditAllowed
	}
	a.Log(AuditLogEntry{
		ActorID:  actorID,
		Role:     role,
		Action:   action,
		Resource: resource,
		Result:   result,
		Reason:   reason,
	})
}

// Log records a prepared entry, stamping it when Timestamp is zero.
func (a *Auditor) Log(entry AuditLogEntry) {
	if a == nil {
		return
	}
	if entry.Timestamp.IsZero() {
		now := a.now
		if now == nil {
			now = time.Now
		}
		entry.Timestamp = now()
	}
	for _, s := range a.sinks {
		recordEntry(s, entry)
	}
}

func recordEntry(s AuditSink, entry AuditLogEntry) {
	defer func() { _ = recover() }()
	_ = s.Record(entry)
}
