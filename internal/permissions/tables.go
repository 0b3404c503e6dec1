package permissions

// Static policy tables. They are built once at package init and never mutated.

var departmentStaffPermissions = []Permission{
	UsersView,
	TasksViewDepartment, TasksViewOwn, TasksCreate, TasksUpdate, TasksAssign,
	AnnouncementsView,
	ReportsViewDepartment, ReportsViewOwn, ReportsCreate,
	SalesViewDepartment, SalesViewOwn, SalesCreate,
	MembersView, MembersUpdate,
	CustomersView,
	TrainersView,
	SchedulesView, SchedulesCreate, SchedulesUpdate, SchedulesDelete,
	OTView, OTCreate, OTAssign,
	PassView,
	SuggestionsView, SuggestionsCreate,
	ManualsView,
	NotificationsView, NotificationsSend,
}

var rolePermissionLists = map[Role][]Permission{
	RoleAdmin: AllPermissions(),
	RoleReception: {
		UsersView,
		TasksViewDepartment, TasksViewOwn, TasksCreate, TasksUpdate, TasksAssign,
		AnnouncementsView, AnnouncementsCreate,
		ReportsViewDepartment, ReportsViewOwn, ReportsCreate,
		SalesViewAll, SalesCreate, SalesUpdate,
		MembersView, MembersCreate, MembersUpdate, MembersDelete,
		CustomersView, CustomersCreate, CustomersUpdate,
		TrainersView,
		SchedulesView, SchedulesCreate, SchedulesUpdate,
		OTView, OTCreate,
		PassView, PassCreate, PassUpdate, PassDelete,
		VendingView, VendingManage,
		SuggestionsView, SuggestionsCreate,
		ManualsView,
		NotificationsView, NotificationsSend,
	},
	RoleFitness: append([]Permission{TrainersUpdate}, departmentStaffPermissions...),
	RoleTennis:  departmentStaffPermissions,
	RoleGolf:    departmentStaffPermissions,
}

var rolePermissions = func() map[Role]map[Permission]struct{} {
	out := make(map[Role]map[Permission]struct{}, len(rolePermissionLists))
	for role, perms := range rolePermissionLists {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		out[role] = set
	}
	return out
}()

var roleDataAccess = map[Role]map[string]DataAccessLevel{
	RoleAdmin: {
		ResourceUsers:         AccessAll,
		ResourceTasks:         AccessAll,
		ResourceReports:       AccessAll,
		ResourceSales:         AccessAll,
		ResourceMembers:       AccessAll,
		ResourceAnnouncements: AccessAll,
		ResourceSchedules:     AccessAll,
		ResourceOT:            AccessAll,
		ResourcePass:          AccessAll,
		ResourceVending:       AccessAll,
		ResourceSuggestions:   AccessAll,
		ResourceManuals:       AccessAll,
	},
	RoleReception: {
		ResourceUsers:         AccessDepartment,
		ResourceTasks:         AccessDepartment,
		ResourceReports:       AccessDepartment,
		ResourceSales:         AccessAll,
		ResourceMembers:       AccessAll,
		ResourceAnnouncements: AccessAll,
		ResourceSchedules:     AccessAll,
		ResourceOT:            AccessOwn,
		ResourcePass:          AccessAll,
		ResourceVending:       AccessAll,
		ResourceSuggestions:   AccessOwn,
		ResourceManuals:       AccessAll,
	},
	RoleFitness: {
		ResourceUsers:         AccessDepartment,
		ResourceTasks:         AccessDepartment,
		ResourceReports:       AccessDepartment,
		ResourceSales:         AccessAssigned,
		ResourceMembers:       AccessAssigned,
		ResourceAnnouncements: AccessAll,
		ResourceSchedules:     AccessAssigned,
		ResourceOT:            AccessAssigned,
		ResourcePass:          AccessDepartment,
		ResourceVending:       AccessNone,
		ResourceSuggestions:   AccessOwn,
		ResourceManuals:       AccessAll,
	},
	RoleTennis: {
		ResourceUsers:         AccessDepartment,
		ResourceTasks:         AccessDepartment,
		ResourceReports:       AccessDepartment,
		ResourceSales:         AccessDepartment,
		ResourceMembers:       AccessDepartment,
		ResourceAnnouncements: AccessAll,
		ResourceSchedules:     AccessDepartment,
		ResourceOT:            AccessOwn,
		ResourcePass:          AccessDepartment,
		ResourceVending:       AccessNone,
		ResourceSuggestions:   AccessOwn,
		ResourceManuals:       AccessAll,
	},
	RoleGolf: {
		ResourceUsers:         AccessDepartment,
		ResourceTasks:         AccessDepartment,
		ResourceReports:       AccessDepartment,
		ResourceSales:         AccessDepartment,
		ResourceMembers:       AccessDepartment,
		ResourceAnnouncements: AccessAll,
		ResourceSchedules:     AccessDepartment,
		ResourceOT:            AccessOwn,
		ResourcePass:          AccessDepartment,
		ResourceVending:       AccessNone,
		ResourceSuggestions:   AccessOwn,
		ResourceManuals:       AccessAll,
	},
}

// adminOnly permissions are refused to every non-admin role even when a role
// table grants them.
var adminOnly = map[Permission]struct{}{
	UsersCreate:         {},
	UsersDelete:         {},
	AnnouncementsDelete: {},
	ReportsApprove:      {},
	AdminSettings:       {},
	AdminLogs:           {},
	AdminBackup:         {},
}

// managerOnly permissions additionally require a manager-tier position.
var managerOnly = map[Permission]struct{}{
	UsersUpdate:       {},
	TasksAssign:       {},
	OTAssign:          {},
	NotificationsSend: {},
}

var pagePermissions = map[string][]Permission{
	"/admin":         {AdminSettings},
	"/admin/logs":    {AdminLogs},
	"/admin/backup":  {AdminBackup},
	"/staff":         {UsersView},
	"/members":       {MembersView},
	"/clients":       {CustomersView},
	"/trainers":      {TrainersView},
	"/sales":         {SalesViewAll, SalesViewDepartment, SalesViewOwn},
	"/passes":        {PassView},
	"/tasks":         {TasksViewAll, TasksViewDepartment, TasksViewOwn},
	"/reports":       {ReportsViewAll, ReportsViewDepartment, ReportsViewOwn},
	"/announcements": {AnnouncementsView},
	"/schedules":     {SchedulesView},
	"/ot":            {OTView},
	"/vending":       {VendingView},
	"/suggestions":   {SuggestionsView},
	"/manuals":       {ManualsView},
	"/notifications": {NotificationsView},
}

// IsAdminOnly reports whether p is restricted to the admin role.
func IsAdminOnly(p Permission) bool {
	_, ok := adminOnly[p]
	return ok
}

// IsManagerOnly reports whether p requires a manager-tier position.
func IsManagerOnly(p Permission) bool {
	_, ok := managerOnly[p]
	return ok
}

// PageRequirements returns the permissions guarding pathname, if it is mapped.
func PageRequirements(pathname string) ([]Permission, bool) {
	perms, ok := pagePermissions[pathname]
	if !ok {
		return nil, false
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out, true
}
