package permissions

import "sort"

const (
	UsersView   Permission = "users.view"
	UsersCreate Permission = "users.create"
	UsersUpdate Permission = "users.update"
	UsersDelete Permission = "users.delete"

	TasksViewAll        Permission = "tasks.view_all"
	TasksViewDepartment Permission = "tasks.view_department"
	TasksViewOwn        Permission = "tasks.view_own"
	TasksCreate         Permission = "tasks.create"
	TasksUpdate         Permission = "tasks.update"
	TasksDelete         Permission = "tasks.delete"
	TasksAssign         Permission = "tasks.assign"

	AnnouncementsView   Permission = "announcements.view"
	AnnouncementsCreate Permission = "announcements.create"
	AnnouncementsUpdate Permission = "announcements.update"
	AnnouncementsDelete Permission = "announcements.delete"

	ReportsViewAll        Permission = "reports.view_all"
	ReportsViewDepartment Permission = "reports.view_department"
	ReportsViewOwn        Permission = "reports.view_own"
	ReportsCreate         Permission = "reports.create"
	ReportsApprove        Permission = "reports.approve"

	SalesViewAll        Permission = "sales.view_all"
	SalesViewDepartment Permission = "sales.view_department"
	SalesViewOwn        Permission = "sales.view_own"
	SalesCreate         Permission = "sales.create"
	SalesUpdate         Permission = "sales.update"
	SalesDelete         Permission = "sales.delete"

	MembersView   Permission = "members.view"
	MembersCreate Permission = "members.create"
	MembersUpdate Permission = "members.update"
	MembersDelete Permission = "members.delete"

	CustomersView   Permission = "customers.view"
	CustomersCreate Permission = "customers.create"
	CustomersUpdate Permission = "customers.update"

	TrainersView   Permission = "trainers.view"
	TrainersCreate Permission = "trainers.create"
	TrainersUpdate Permission = "trainers.update"
	TrainersDelete Permission = "trainers.delete"

	SchedulesView   Permission = "schedules.view"
	SchedulesCreate Permission = "schedules.create"
	SchedulesUpdate Permission = "schedules.update"
	SchedulesDelete Permission = "schedules.delete"

	OTView    Permission = "ot.view"
	OTCreate  Permission = "ot.create"
	OTAssign  Permission = "ot.assign"
	OTApprove Permission = "ot.approve"

	PassView   Permission = "pass.view"
	PassCreate Permission = "pass.create"
	PassUpdate Permission = "pass.update"
	PassDelete Permission = "pass.delete"

	VendingView   Permission = "vending.view"
	VendingManage Permission = "vending.manage"

	SuggestionsView    Permission = "suggestions.view"
	SuggestionsCreate  Permission = "suggestions.create"
	SuggestionsRespond Permission = "suggestions.respond"

	ManualsView   Permission = "manuals.view"
	ManualsCreate Permission = "manuals.create"
	ManualsUpdate Permission = "manuals.update"

	AdminSettings Permission = "admin.settings"
	AdminLogs     Permission = "admin.logs"
	AdminBackup   Permission = "admin.backup"

	NotificationsView Permission = "notifications.view"
	NotificationsSend Permission = "notifications.send"
)

// CatalogEntry is the presentation metadata forms use for a permission.
type CatalogEntry struct {
	Permission Permission `json:"permission"`
	Label      string     `json:"label"`
	Category   string     `json:"category"`
}

var catalog = []CatalogEntry{
	{UsersView, "직원 조회", "직원 관리"},
	{UsersCreate, "직원 등록", "직원 관리"},
	{UsersUpdate, "직원 수정", "직원 관리"},
	{UsersDelete, "직원 삭제", "직원 관리"},

	{TasksViewAll, "전체 업무 조회", "업무"},
	{TasksViewDepartment, "부서 업무 조회", "업무"},
	{TasksViewOwn, "내 업무 조회", "업무"},
	{TasksCreate, "업무 생성", "업무"},
	{TasksUpdate, "업무 수정", "업무"},
	{TasksDelete, "업무 삭제", "업무"},
	{TasksAssign, "업무 배정", "업무"},

	{AnnouncementsView, "공지 조회", "공지사항"},
	{AnnouncementsCreate, "공지 작성", "공지사항"},
	{AnnouncementsUpdate, "공지 수정", "공지사항"},
	{AnnouncementsDelete, "공지 삭제", "공지사항"},

	{ReportsViewAll, "전체 보고서 조회", "보고서"},
	{ReportsViewDepartment, "부서 보고서 조회", "보고서"},
	{ReportsViewOwn, "내 보고서 조회", "보고서"},
	{ReportsCreate, "보고서 작성", "보고서"},
	{ReportsApprove, "보고서 승인", "보고서"},

	{SalesViewAll, "전체 매출 조회", "매출"},
	{SalesViewDepartment, "부서 매출 조회", "매출"},
	{SalesViewOwn, "내 매출 조회", "매출"},
	{SalesCreate, "매출 등록", "매출"},
	{SalesUpdate, "매출 수정", "매출"},
	{SalesDelete, "매출 삭제", "매출"},

	{MembersView, "회원 조회", "회원"},
	{MembersCreate, "회원 등록", "회원"},
	{MembersUpdate, "회원 수정", "회원"},
	{MembersDelete, "회원 삭제", "회원"},

	{CustomersView, "고객 조회", "고객"},
	{CustomersCreate, "고객 등록", "고객"},
	{CustomersUpdate, "고객 수정", "고객"},

	{TrainersView, "트레이너 조회", "트레이너"},
	{TrainersCreate, "트레이너 등록", "트레이너"},
	{TrainersUpdate, "트레이너 수정", "트레이너"},
	{TrainersDelete, "트레이너 삭제", "트레이너"},

	{SchedulesView, "일정 조회", "일정"},
	{SchedulesCreate, "일정 등록", "일정"},
	{SchedulesUpdate, "일정 수정", "일정"},
	{SchedulesDelete, "일정 삭제", "일정"},

	{OTView, "OT 조회", "OT"},
	{OTCreate, "OT 등록", "OT"},
	{OTAssign, "OT 배정", "OT"},
	{OTApprove, "OT 승인", "OT"},

	{PassView, "이용권 조회", "이용권"},
	{PassCreate, "이용권 발급", "이용권"},
	{PassUpdate, "이용권 수정", "이용권"},
	{PassDelete, "이용권 삭제", "이용권"},

	{VendingView, "자판기 조회", "자판기"},
	{VendingManage, "자판기 관리", "자판기"},

	{SuggestionsView, "건의사항 조회", "건의사항"},
	{SuggestionsCreate, "건의사항 작성", "건의사항"},
	{SuggestionsRespond, "건의사항 답변", "건의사항"},

	{ManualsView, "매뉴얼 조회", "매뉴얼"},
	{ManualsCreate, "매뉴얼 작성", "매뉴얼"},
	{ManualsUpdate, "매뉴얼 수정", "매뉴얼"},

	{AdminSettings, "시스템 설정", "관리자"},
	{AdminLogs, "로그 조회", "관리자"},
	{AdminBackup, "백업", "관리자"},

	{NotificationsView, "알림 조회", "알림"},
	{NotificationsSend, "알림 발송", "알림"},
}

var catalogIndex = func() map[Permission]CatalogEntry {
	m := make(map[Permission]CatalogEntry, len(catalog))
	for _, e := range catalog {
		m[e.Permission] = e
	}
	return m
}()

// AllPermissions returns every permission in the closed enumeration, in catalog order.
func AllPermissions() []Permission {
	out := make([]Permission, len(catalog))
	for i, e := range catalog {
		out[i] = e.Permission
	}
	return out
}

// Catalog returns a copy of the permission registry.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}

// LookupPermission returns the catalog entry for p.
func LookupPermission(p Permission) (CatalogEntry, bool) {
	e, ok := catalogIndex[p]
	return e, ok
}

// ParsePermission accepts only members of the enumeration. The literal "all"
// is not a permission and is rejected.
func ParsePermission(s string) (Permission, bool) {
	p := Permission(s)
	_, ok := catalogIndex[p]
	return p, ok
}

// CatalogByCategory groups the registry by category, keeping catalog order within each group.
func CatalogByCategory() map[string][]CatalogEntry {
	out := make(map[string][]CatalogEntry)
	for _, e := range catalog {
		out[e.Category] = append(out[e.Category], e)
	}
	return out
}

// Categories returns the sorted category names.
func Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range catalog {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	sort.Strings(out)
	return out
}
