package permissions

import "strings"

// Role is the actor category. Every staff account has exactly one.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleReception Role = "reception"
	RoleFitness   Role = "fitness"
	RoleTennis    Role = "tennis"
	RoleGolf      Role = "golf"
)

// AllRoles lists the roles in display order.
var AllRoles = []Role{RoleAdmin, RoleReception, RoleFitness, RoleTennis, RoleGolf}

var roleDepartments = map[Role]string{
	RoleAdmin:     "관리자",
	RoleReception: "리셉션",
	RoleFitness:   "피트니스",
	RoleTennis:    "테니스",
	RoleGolf:      "골프",
}

// ParseRole normalizes s and reports whether it names a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

func (r Role) Valid() bool {
	_, ok := roleDepartments[r]
	return ok
}

// Department returns the Korean department label for the role, or the raw
// role string when the role is unknown.
func (r Role) Department() string {
	if d, ok := roleDepartments[r]; ok {
		return d
	}
	return string(r)
}

// Permission is a "<resource>.<action>" identifier.
type Permission string

// Resource returns the family part of the permission ("tasks" for "tasks.create").
func (p Permission) Resource() string {
	s := string(p)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// DataAccessLevel is the record scope a role gets for a resource type.
type DataAccessLevel string

const (
	AccessAll        DataAccessLevel = "all"
	AccessDepartment DataAccessLevel = "department"
	AccessAssigned   DataAccessLevel = "assigned"
	AccessOwn        DataAccessLevel = "own"
	AccessNone       DataAccessLevel = "none"
)

// Resource type names used by the data access table.
const (
	ResourceUsers         = "users"
	ResourceTasks         = "tasks"
	ResourceReports       = "reports"
	ResourceSales         = "sales"
	ResourceMembers       = "members"
	ResourceAnnouncements = "announcements"
	ResourceSchedules     = "schedules"
	ResourceOT            = "ot"
	ResourcePass          = "pass"
	ResourceVending       = "vending"
	ResourceSuggestions   = "suggestions"
	ResourceManuals       = "manuals"
)

// ResourceTypes lists every resource type with an explicit access entry.
var ResourceTypes = []string{
	ResourceUsers, ResourceTasks, ResourceReports, ResourceSales, ResourceMembers,
	ResourceAnnouncements, ResourceSchedules, ResourceOT, ResourcePass,
	ResourceVending, ResourceSuggestions, ResourceManuals,
}

// Actor is the authenticated user a decision is made for.
type Actor struct {
	ID         string   `json:"id"`
	Role       Role     `json:"role"`
	Position   Position `json:"position,omitempty"`
	Department string   `json:"department,omitempty"`
}

// AccessMetadata is the uniform ownership shape every governed record exposes.
//
// An empty OwnerID or Department means the field is unknown. AssignedIDs is nil
// when the record has no assignment field at all; a non-nil empty slice means
// the record is assigned to nobody.
type AccessMetadata struct {
	ID          string
	OwnerID     string
	AssignedIDs []string
	Department  string
}

// Governed is implemented by any record the core can authorize.
type Governed interface {
	AccessMetadata() AccessMetadata
}

// CheckResult is the outcome of CheckPermissionWithReason.
type CheckResult struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}
