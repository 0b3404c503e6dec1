package rbac

import (
	"fmt"

	"fitdesk/internal/permissions"
)

// Checker binds actors to the authorization core and audits privileged checks.
type Checker struct {
	Auditor *permissions.Auditor
}

func NewChecker(auditor *permissions.Auditor) Checker {
	return Checker{Auditor: auditor}
}

// For returns a Session for the actor. requestID tags audit entries and may be empty.
func (c Checker) For(actor permissions.Actor, requestID string) Session {
	return Session{actor: actor, requestID: requestID, auditor: c.Auditor}
}

// Session is an actor-bound view of the authorization core.
type Session struct {
	actor     permissions.Actor
	requestID string
	auditor   *permissions.Auditor
}

func (s Session) Actor() permissions.Actor { return s.actor }

func (s Session) Can(p permissions.Permission) bool {
	return permissions.HasPermission(s.actor.Role, p)
}

func (s Session) CanAny(ps ...permissions.Permission) bool {
	return permissions.HasAnyPermission(s.actor.Role, ps...)
}

func (s Session) CanAll(ps ...permissions.Permission) bool {
	return permissions.HasAllPermissions(s.actor.Role, ps...)
}

func (s Session) AccessLevel(resourceType string) permissions.DataAccessLevel {
	return permissions.GetDataAccessLevel(s.actor.Role, resourceType)
}

func (s Session) Elevated(level permissions.ElevationLevel) bool {
	return permissions.HasElevatedPermission(s.actor.Role, s.actor.Position, level)
}

func (s Session) PageAccess(path string) bool {
	return permissions.HasPageAccess(s.actor.Role, path)
}

// Check runs CheckPermissionWithReason and records the decision.
func (s Session) Check(p permissions.Permission, resource string) permissions.CheckResult {
	res := permissions.CheckPermissionWithReason(s.actor.Role, p, s.actor.Position)
	s.audit(string(p), resource, res.Allowed, res.Reason)
	return res
}

// CanModify decides write access to one record. Denials are audited.
func (s Session) CanModify(action, resourceType string, item permissions.AccessMetadata) permissions.CheckResult {
	mc := permissions.ModifyContextFor(s.actor, item)
	if permissions.CanModifyData(s.actor.Role, resourceType, mc) {
		return permissions.CheckResult{Allowed: true, Reason: "권한이 확인되었습니다"}
	}
	level := permissions.GetDataAccessLevel(s.actor.Role, resourceType)
	res := permissions.CheckResult{
		Allowed: false,
		Reason:  fmt.Sprintf("%s 부서의 %s 데이터 접근 범위(%s)를 벗어난 항목입니다", s.actor.Role.Department(), resourceType, level),
	}
	s.audit(action, resourceType+"/"+item.ID, false, res.Reason)
	return res
}

// Record audits an action that was already authorized, such as a completed mutation.
func (s Session) Record(action, resource string) {
	s.audit(action, resource, true, "")
}

func (s Session) audit(action, resource string, allowed bool, reason string) {
	result := permissions.AuditDenied
	if allowed {
		result = permissions.AuditAllowed
	}
	s.auditor.Log(permissions.AuditLogEntry{
		RequestID: s.requestID,
		ActorID:   s.actor.ID,
		Role:      s.actor.Role,
		Action:    action,
		Resource:  resource,
		Result:    result,
		Reason:    reason,
	})
}

// Filter is the actor-bound form of FilterDataByPermission.
func Filter[T permissions.Governed](s Session, resourceType string, items []T) []T {
	return permissions.FilterDataByPermission(items, s.actor.Role, resourceType, s.actor.ID, s.actor.Department)
}
