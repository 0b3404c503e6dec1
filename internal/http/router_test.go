package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitdesk/internal/audit"
	"fitdesk/internal/auth"
	"fitdesk/internal/models"
	"fitdesk/internal/permissions"
	"fitdesk/internal/rbac"
	"fitdesk/internal/testutil"
)

const testSecret = "router-test-secret-router-test-secret"

func init() { gin.SetMode(gin.TestMode) }

type memorySink struct {
	mu      sync.Mutex
	entries []permissions.AuditLogEntry
}

func (m *memorySink) Record(e permissions.AuditLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *memorySink) denied() []permissions.AuditLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []permissions.AuditLogEntry
	for _, e := range m.entries {
		if e.Result == permissions.AuditDenied {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	sink   *memorySink
	staff  map[string]*models.Staff
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	sink := &memorySink{}

	f := &fixture{t: t, db: db, sink: sink, staff: map[string]*models.Staff{}}
	f.addStaff("admin", permissions.RoleAdmin, permissions.PositionDirector, "admin")
	f.addStaff("reception", permissions.RoleReception, permissions.PositionReceptionStaff, "reception")
	f.addStaff("trainer", permissions.RoleFitness, permissions.PositionTrainer, "fitness")
	f.addStaff("lead", permissions.RoleFitness, permissions.PositionTeamLead, "fitness")
	f.addStaff("pro", permissions.RoleTennis, permissions.PositionPro, "tennis")

	f.router = NewRouter(Options{
		DB:        db,
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
		Checker:   rbac.NewChecker(permissions.NewAuditor(sink)),
		Log:       zap.NewNop(),
	})
	return f
}

func (f *fixture) addStaff(key string, role permissions.Role, pos permissions.Position, dept string) {
	hash, err := auth.HashPassword("password-" + key)
	require.NoError(f.t, err)
	s := &models.Staff{
		Email:        key + "@fitdesk.local",
		Name:         key,
		PasswordHash: hash,
		Role:         role,
		Position:     pos,
		Department:   dept,
		Status:       models.StaffActive,
	}
	require.NoError(f.t, f.db.Create(s).Error)
	f.staff[key] = s
}

func (f *fixture) do(as, method, path string, body any) *httptest.ResponseRecorder {
	f.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(f.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if as != "" {
		tok, err := auth.IssueToken(testSecret, *f.staff[as], time.Hour)
		require.NoError(f.t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestLogin(t *testing.T) {
	f := newFixture(t)

	w := f.do("", http.MethodPost, "/api/v1/auth/login", gin.H{"email": "trainer@fitdesk.local", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do("", http.MethodPost, "/api/v1/auth/login", gin.H{"email": "Trainer@FitDesk.local", "password": "password-trainer"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	var tok string
	require.NoError(t, json.Unmarshal(body["token"], &tok))

	claims, err := auth.ParseToken(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, f.staff["trainer"].ID, claims.UserID)
	assert.Equal(t, permissions.RoleFitness, claims.Role)
	assert.NotEmpty(t, w.Result().Cookies())

	w = f.do("", http.MethodGet, "/api/v1/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	f := newFixture(t)

	w := f.do("lead", http.MethodGet, "/api/v1/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	var access map[string]permissions.DataAccessLevel
	require.NoError(t, json.Unmarshal(body["data_access"], &access))
	assert.Equal(t, permissions.AccessAssigned, access[permissions.ResourceMembers])
	assert.Equal(t, permissions.AccessNone, access[permissions.ResourceVending])

	var elevated map[string]bool
	require.NoError(t, json.Unmarshal(body["elevated"], &elevated))
	assert.True(t, elevated["manager"])
	assert.False(t, elevated["admin"])

	var perms []permissions.Permission
	require.NoError(t, json.Unmarshal(body["permissions"], &perms))
	assert.Contains(t, perms, permissions.TrainersUpdate)
	assert.NotContains(t, perms, permissions.UsersDelete)
}

func TestPermissionEndpoints(t *testing.T) {
	f := newFixture(t)

	w := f.do("", http.MethodGet, "/api/v1/permissions/catalog", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do("reception", http.MethodGet, "/api/v1/permissions/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tasks.assign")

	w = f.do("trainer", http.MethodGet, "/api/v1/permissions/check?permission=tasks.assign", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allowed":false`)
	assert.Contains(t, w.Body.String(), "팀장 또는 매니저")

	w = f.do("lead", http.MethodGet, "/api/v1/permissions/check?permission=tasks.assign", nil)
	assert.Contains(t, w.Body.String(), `"allowed":true`)

	w = f.do("admin", http.MethodGet, "/api/v1/permissions/check?permission=all", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do("reception", http.MethodGet, "/api/v1/pages/access?path=/admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allowed":false`)

	w = f.do("reception", http.MethodGet, "/api/v1/pages/access?path=/passes", nil)
	assert.Contains(t, w.Body.String(), `"allowed":true`)

	w = f.do("reception", http.MethodGet, "/api/v1/pages/access", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMembers_AssignedScope(t *testing.T) {
	f := newFixture(t)
	mine := &models.Member{Name: "mine", Department: "fitness", TrainerID: f.staff["trainer"].ID, CreatedBy: f.staff["reception"].ID}
	other := &models.Member{Name: "other", Department: "fitness", TrainerID: f.staff["lead"].ID, CreatedBy: f.staff["reception"].ID}
	require.NoError(t, f.db.Create(mine).Error)
	require.NoError(t, f.db.Create(other).Error)

	w := f.do("trainer", http.MethodGet, "/api/v1/members", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Member
	require.NoError(t, json.Unmarshal(decode(t, w)["members"], &list))
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	w = f.do("trainer", http.MethodGet, "/api/v1/members/"+other.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do("reception", http.MethodGet, "/api/v1/members", nil)
	require.NoError(t, json.Unmarshal(decode(t, w)["members"], &list))
	assert.Len(t, list, 2)

	w = f.do("trainer", http.MethodPatch, "/api/v1/members/"+other.ID, gin.H{"memo": "hijack"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "reason")

	w = f.do("trainer", http.MethodPatch, "/api/v1/members/"+mine.ID, gin.H{"memo": "knee injury"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "knee injury")

	// fitness staff cannot register members at all
	w = f.do("trainer", http.MethodPost, "/api/v1/members", gin.H{"name": "walk-in"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do("reception", http.MethodPost, "/api/v1/members", gin.H{"name": "walk-in", "id": "chosen-id"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Member
	require.NoError(t, json.Unmarshal(decode(t, w)["item"], &created))
	assert.NotEqual(t, "chosen-id", created.ID)
	assert.Equal(t, f.staff["reception"].ID, created.CreatedBy)
	assert.Equal(t, "reception", created.Department)
}

func TestTasks_DepartmentScopeAndAudit(t *testing.T) {
	f := newFixture(t)
	foreign := &models.Task{Title: "restring rackets", Department: "tennis", CreatedBy: f.staff["pro"].ID}
	require.NoError(t, f.db.Create(foreign).Error)

	w := f.do("lead", http.MethodPatch, "/api/v1/tasks/"+foreign.ID, gin.H{"status": "done"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "피트니스")

	denied := f.sink.denied()
	require.NotEmpty(t, denied)
	last := denied[len(denied)-1]
	assert.Equal(t, f.staff["lead"].ID, last.ActorID)
	assert.Equal(t, "tasks/"+foreign.ID, last.Resource)

	w = f.do("lead", http.MethodGet, "/api/v1/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "restring rackets")

	w = f.do("pro", http.MethodPatch, "/api/v1/tasks/"+foreign.ID, gin.H{"department": "golf"})
	assert.Equal(t, http.StatusForbidden, w.Code, "moving a record out of scope is refused")

	w = f.do("pro", http.MethodPatch, "/api/v1/tasks/"+foreign.ID, gin.H{"status": "done", "assigned_to": []string{"x"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Task
	require.NoError(t, json.Unmarshal(decode(t, w)["item"], &updated))
	assert.Equal(t, models.TaskDone, updated.Status)
	assert.Nil(t, updated.Assignees(), "assignment only changes through the assign endpoint")
}

func TestTasks_Assign(t *testing.T) {
	f := newFixture(t)

	w := f.do("trainer", http.MethodPost, "/api/v1/tasks", gin.H{"title": "clean mats", "assigned_to": []string{"someone"}})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do("trainer", http.MethodPost, "/api/v1/tasks", gin.H{"title": "fold towels", "assigned_to": []string{}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var unassigned models.Task
	require.NoError(t, json.Unmarshal(decode(t, w)["item"], &unassigned))
	assert.Nil(t, unassigned.Assignees())

	w = f.do("trainer", http.MethodGet, "/api/v1/tasks/"+unassigned.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do("trainer", http.MethodPost, "/api/v1/tasks", gin.H{"title": "clean mats"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var task models.Task
	require.NoError(t, json.Unmarshal(decode(t, w)["item"], &task))
	assert.Equal(t, "fitness", task.Department)

	w = f.do("trainer", http.MethodPost, "/api/v1/tasks/"+task.ID+"/assign", gin.H{"assigned_to": []string{f.staff["trainer"].ID}})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do("pro", http.MethodPost, "/api/v1/tasks/"+task.ID+"/assign", gin.H{"assigned_to": []string{"p"}})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do("lead", http.MethodPost, "/api/v1/tasks/"+task.ID+"/assign", gin.H{"assigned_to": []string{f.staff["trainer"].ID}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Task
	require.NoError(t, f.db.First(&stored, "id = ?", task.ID).Error)
	assert.Equal(t, []string{f.staff["trainer"].ID}, stored.Assignees())

	w = f.do("lead", http.MethodPost, "/api/v1/tasks/missing/assign", gin.H{"assigned_to": []string{}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaff(t *testing.T) {
	f := newFixture(t)

	w := f.do("reception", http.MethodDelete, "/api/v1/staff/"+f.staff["trainer"].ID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "users.delete")

	w = f.do("reception", http.MethodPost, "/api/v1/staff", gin.H{
		"email": "new@fitdesk.local", "name": "new", "password": "long-enough", "role": "fitness",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do("admin", http.MethodPost, "/api/v1/staff", gin.H{
		"email": "new@fitdesk.local", "name": "new", "password": "long-enough", "role": "golf", "position": "프로", "department": "golf",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password_hash")

	w = f.do("admin", http.MethodPost, "/api/v1/staff", gin.H{
		"email": "new@fitdesk.local", "name": "dup", "password": "long-enough", "role": "golf",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = f.do("admin", http.MethodPost, "/api/v1/staff", gin.H{
		"email": "x@fitdesk.local", "name": "x", "password": "long-enough", "role": "all",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// department roles hold users.view only
	w = f.do("lead", http.MethodPatch, "/api/v1/staff/"+f.staff["trainer"].ID, gin.H{"phone": "010-0000-0000"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do("admin", http.MethodPatch, "/api/v1/staff/"+f.staff["lead"].ID, gin.H{"phone": "010-0000-0000", "role": "golf", "department": "golf"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var moved models.Staff
	require.NoError(t, json.Unmarshal(decode(t, w)["staff"], &moved))
	assert.Equal(t, permissions.RoleGolf, moved.Role)
	assert.Equal(t, "010-0000-0000", moved.Phone)

	w = f.do("admin", http.MethodPatch, "/api/v1/staff/"+f.staff["lead"].ID, gin.H{"position": "사장"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = f.do("admin", http.MethodPatch, "/api/v1/staff/"+f.staff["lead"].ID, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do("admin", http.MethodPost, "/api/v1/staff/"+f.staff["pro"].ID+"/suspend", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do("pro", http.MethodGet, "/api/v1/me", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do("trainer", http.MethodGet, "/api/v1/staff", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Staff
	require.NoError(t, json.Unmarshal(decode(t, w)["staff"], &list))
	require.NotEmpty(t, list)
	for _, s := range list {
		assert.Equal(t, "fitness", s.Department)
		assert.NotEqual(t, f.staff["lead"].ID, s.ID, "moved staff leave the department list")
	}
}

func TestPatchWritesZeroValues(t *testing.T) {
	f := newFixture(t)

	w := f.do("admin", http.MethodPost, "/api/v1/trainers", gin.H{"name": "Park", "department": "fitness", "active": false})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var retired models.Trainer
	require.NoError(t, json.Unmarshal(decode(t, w)["item"], &retired))
	var stored models.Trainer
	require.NoError(t, f.db.First(&stored, "id = ?", retired.ID).Error)
	require.NotNil(t, stored.Active)
	assert.False(t, *stored.Active)

	w = f.do("admin", http.MethodPost, "/api/v1/trainers", gin.H{"name": "Choi", "department": "fitness"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var coach models.Trainer
	require.NoError(t, json.Unmarshal(decode(t, w)["item"], &coach))
	require.NotNil(t, coach.Active)
	assert.True(t, *coach.Active)

	w = f.do("lead", http.MethodPatch, "/api/v1/trainers/"+coach.ID, gin.H{"active": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, f.db.First(&stored, "id = ?", coach.ID).Error)
	assert.False(t, *stored.Active)
	assert.Equal(t, "Choi", stored.Name)

	w = f.do("reception", http.MethodPost, "/api/v1/passes", gin.H{"member_id": "m1", "kind": "pt10", "total_sessions": 10})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pass models.Pass
	require.NoError(t, json.Unmarshal(decode(t, w)["item"], &pass))
	assert.Equal(t, 10, pass.RemainingSessions)

	w = f.do("reception", http.MethodPatch, "/api/v1/passes/"+pass.ID, gin.H{"remaining_sessions": 0, "created_by": "someone-else"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(decode(t, w)["item"], &pass))
	assert.Equal(t, 0, pass.RemainingSessions)
	assert.Equal(t, 10, pass.TotalSessions)
	assert.Equal(t, f.staff["reception"].ID, pass.CreatedBy)

	w = f.do("reception", http.MethodPatch, "/api/v1/passes/"+pass.ID, []int{1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWriteChecksPrecedeLookup(t *testing.T) {
	f := newFixture(t)

	for _, tc := range []struct {
		as, method, path string
		body             any
	}{
		{"trainer", http.MethodDelete, "/api/v1/tasks/missing", nil},
		{"trainer", http.MethodPatch, "/api/v1/passes/missing", gin.H{"kind": "x"}},
		{"trainer", http.MethodPatch, "/api/v1/staff/missing", gin.H{"phone": "010"}},
		{"trainer", http.MethodPost, "/api/v1/staff/missing/suspend", nil},
		{"trainer", http.MethodPost, "/api/v1/staff/missing/password", gin.H{"password": "a-new-password"}},
		{"trainer", http.MethodPost, "/api/v1/tasks/missing/assign", gin.H{"assigned_to": []string{}}},
	} {
		w := f.do(tc.as, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", tc.method, tc.path)
	}

	w := f.do("admin", http.MethodDelete, "/api/v1/tasks/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)

	w := f.do("trainer", http.MethodPost, "/api/v1/staff/"+f.staff["trainer"].ID+"/password", gin.H{"password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do("trainer", http.MethodPost, "/api/v1/staff/"+f.staff["trainer"].ID+"/password", gin.H{"password": "a-new-password"})
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do("trainer", http.MethodPost, "/api/v1/staff/"+f.staff["lead"].ID+"/password", gin.H{"password": "a-new-password"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do("", http.MethodPost, "/api/v1/auth/login", gin.H{"email": "trainer@fitdesk.local", "password": "a-new-password"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRolesAndProfile(t *testing.T) {
	f := newFixture(t)

	w := f.do("", http.MethodGet, "/api/v1/roles", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do("pro", http.MethodGet, "/api/v1/roles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"department":"테니스"`)

	w = f.do("pro", http.MethodGet, "/api/v1/roles/assignments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Assignments map[permissions.Role][]models.Staff `json:"assignments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Assignments[permissions.RoleTennis], 1)
	assert.Empty(t, body.Assignments[permissions.RoleFitness])

	w = f.do("pro", http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pro@fitdesk.local")
}

func TestAuditTrail(t *testing.T) {
	db := testutil.NewDB(t)
	sink := audit.NewGormSink(db, zap.NewNop(), 16)
	auditor := permissions.NewAuditor(sink)

	auditor.LogPermissionCheck("u1", permissions.RoleGolf, "sales.delete", "sales/1", false, "no")
	auditor.LogPermissionCheck("u2", permissions.RoleGolf, "tasks.create", "tasks", true, "")
	auditor.LogPermissionCheck("u3", permissions.RoleTennis, "members.update", "members/9", false, "scope")
	sink.Close()

	admin := &models.Staff{Email: "a@fitdesk.local", Role: permissions.RoleAdmin, Department: "admin", Status: models.StaffActive}
	golfer := &models.Staff{Email: "g@fitdesk.local", Role: permissions.RoleGolf, Department: "golf", Status: models.StaffActive}
	require.NoError(t, db.Create(admin).Error)
	require.NoError(t, db.Create(golfer).Error)

	r := NewRouter(Options{DB: db, JWTSecret: testSecret, TokenTTL: time.Hour, Checker: rbac.NewChecker(nil), Log: zap.NewNop()})
	get := func(s *models.Staff, path string) *httptest.ResponseRecorder {
		tok, err := auth.IssueToken(testSecret, *s, time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := get(golfer, "/api/v1/audit")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = get(admin, "/api/v1/audit?result=denied&limit=1")
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Logs       []models.AuditLog `json:"logs"`
		NextCursor *int64            `json:"next_cursor"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Logs, 1)
	assert.Equal(t, "u3", page.Logs[0].ActorID)
	require.NotNil(t, page.NextCursor)

	w = get(admin, "/api/v1/audit?result=denied&after_id="+strconv.FormatInt(*page.NextCursor, 10))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Logs, 1)
	assert.Equal(t, "u1", page.Logs[0].ActorID)
	assert.Nil(t, page.NextCursor)

	w = get(admin, "/api/v1/audit?q=tasks")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Logs, 1)
	assert.Equal(t, "u2", page.Logs[0].ActorID)

	w = get(admin, "/api/v1/audit?result=maybe")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
