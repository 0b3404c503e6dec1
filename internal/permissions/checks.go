package permissions

import (
	"fmt"
	"sort"
)

// HasPermission reports whether role's table contains permission.
// Unknown roles and permissions are denied.
func HasPermission(role Role, permission Permission) bool {
	set, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = set[permission]
	return ok
}

// HasAnyPermission is false for an empty list.
func HasAnyPermission(role Role, permissions ...Permission) bool {
	for _, p := range permissions {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions is true for an empty list.
func HasAllPermissions(role Role, permissions ...Permission) bool {
	for _, p := range permissions {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}

// PermissionsFor returns the role's permissions sorted by name.
func PermissionsFor(role Role) []Permission {
	set := rolePermissions[role]
	out := make([]Permission, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GetDataAccessLevel returns AccessNone for unknown roles or resource types.
func GetDataAccessLevel(role Role, resourceType string) DataAccessLevel {
	levels, ok := roleDataAccess[role]
	if !ok {
		return AccessNone
	}
	level, ok := levels[resourceType]
	if !ok {
		return AccessNone
	}
	return level
}

// CheckPermissionWithReason runs the base table lookup followed by the
// admin-only and manager-tier overrides.
func CheckPermissionWithReason(role Role, permission Permission, position Position) CheckResult {
	if !HasPermission(role, permission) {
		return CheckResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s 부서에는 %s 권한이 없습니다", role.Department(), permission),
		}
	}
	if IsAdminOnly(permission) && role != RoleAdmin {
		return CheckResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s 권한은 관리자만 사용할 수 있습니다", permission),
		}
	}
	if IsManagerOnly(permission) && !HasElevatedPermission(role, position, ElevationManager) {
		return CheckResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s 권한은 팀장 또는 매니저 직급 이상만 사용할 수 있습니다", permission),
		}
	}
	return CheckResult{Allowed: true, Reason: "권한이 확인되었습니다"}
}

// HasPageAccess gates a console page. Unmapped paths are open.
func HasPageAccess(role Role, pathname string) bool {
	required, ok := pagePermissions[pathname]
	if !ok {
		return true
	}
	return HasAnyPermission(role, required...)
}

func CanCreateTask(role Role) bool {
	return HasPermission(role, TasksCreate)
}

func CanAssignTask(role Role, position Position) bool {
	return HasPermission(role, TasksAssign) && HasElevatedPermission(role, position, ElevationManager)
}

func CanViewAllTasks(role Role) bool {
	return HasAnyPermission(role, TasksViewAll, TasksViewDepartment)
}

func CanManageUsers(role Role, position Position) bool {
	return HasAnyPermission(role, UsersCreate, UsersUpdate, UsersDelete) &&
		HasElevatedPermission(role, position, ElevationManager)
}

// ViewScope is the breadth a caller asks to see reports or sales at.
type ViewScope string

const (
	ScopeAll        ViewScope = "all"
	ScopeDepartment ViewScope = "department"
	ScopeOwn        ViewScope = "own"
)

func canViewScoped(role Role, scope ViewScope, viewAll, viewDepartment, viewOwn Permission) bool {
	switch scope {
	case ScopeAll:
		return HasPermission(role, viewAll)
	case ScopeDepartment:
		return HasAnyPermission(role, viewAll, viewDepartment)
	case ScopeOwn:
		return HasAnyPermission(role, viewAll, viewDepartment, viewOwn)
	default:
		return false
	}
}

func CanViewReports(role Role, scope ViewScope) bool {
	return canViewScoped(role, scope, ReportsViewAll, ReportsViewDepartment, ReportsViewOwn)
}

func CanViewSales(role Role, scope ViewScope) bool {
	return canViewScoped(role, scope, SalesViewAll, SalesViewDepartment, SalesViewOwn)
}

func CanManageMembers(role Role) bool {
	return HasAnyPermission(role, MembersCreate, MembersUpdate, MembersDelete)
}

func CanManageSchedules(role Role) bool {
	return HasAnyPermission(role, SchedulesCreate, SchedulesUpdate, SchedulesDelete)
}
