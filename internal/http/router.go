package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitdesk/internal/auth"
	"fitdesk/internal/http/handlers"
	"fitdesk/internal/models"
	"fitdesk/internal/permissions"
	"fitdesk/internal/rbac"
	"fitdesk/internal/store"
)

type Options struct {
	DB        *gorm.DB
	JWTSecret string
	TokenTTL  time.Duration
	Checker   rbac.Checker
	Log       *zap.Logger
}

func NewRouter(o Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), auth.RequestID())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	r.POST("/api/v1/auth/login", handlers.LoginHandler(o.DB, o.JWTSecret, o.TokenTTL, o.Log))
	r.POST("/api/v1/auth/logout", handlers.LogoutHandler())

	chk := o.Checker
	api := r.Group("/api/v1", auth.JWT(o.DB, o.JWTSecret))
	{
		api.GET("/me", handlers.MeHandler(chk))
		api.GET("/permissions/catalog", handlers.PermissionCatalog())
		api.GET("/permissions/check", handlers.CheckPermission(chk))
		api.GET("/pages/access", handlers.PageAccess(chk))
		api.GET("/profile", handlers.ProfileHandler(o.DB))
		api.GET("/roles", handlers.ListRoles())

		// Staff
		staffRepo := store.NewRepository[models.Staff](o.DB)
		staff := &handlers.StaffHandler{DB: o.DB, Repo: staffRepo, Checker: chk, Log: o.Log}
		api.GET("/staff", requirePerms(chk, permissions.UsersView), staff.List())
		api.GET("/roles/assignments", requirePerms(chk, permissions.UsersView), handlers.ListRoleAssignments(staffRepo, chk, o.Log))
		api.POST("/staff", staff.Create())
		api.PATCH("/staff/:id", staff.Update())
		api.DELETE("/staff/:id", staff.Delete())
		api.POST("/staff/:id/suspend", staff.SetStatus(models.StaffSuspended))
		api.POST("/staff/:id/activate", staff.SetStatus(models.StaffActive))
		api.POST("/staff/:id/password", staff.ChangePassword())

		mount(api, "/members", &handlers.Resource[models.Member, *models.Member]{
			Name:         "members",
			ResourceType: permissions.ResourceMembers,
			View:         []permissions.Permission{permissions.MembersView},
			CreatePerm:   permissions.MembersCreate,
			UpdatePerm:   permissions.MembersUpdate,
			DeletePerm:   permissions.MembersDelete,
			Repo:         store.NewRepository[models.Member](o.DB),
			Checker:      chk,
			Log:          o.Log,
		})
		mount(api, "/trainers", &handlers.Resource[models.Trainer, *models.Trainer]{
			Name:         "trainers",
			ResourceType: permissions.ResourceUsers,
			View:         []permissions.Permission{permissions.TrainersView},
			CreatePerm:   permissions.TrainersCreate,
			UpdatePerm:   permissions.TrainersUpdate,
			DeletePerm:   permissions.TrainersDelete,
			Repo:         store.NewRepository[models.Trainer](o.DB),
			Checker:      chk,
			Log:          o.Log,
		})
		mount(api, "/sales", &handlers.Resource[models.Sale, *models.Sale]{
			Name:         "sales",
			ResourceType: permissions.ResourceSales,
			View:         []permissions.Permission{permissions.SalesViewAll, permissions.SalesViewDepartment, permissions.SalesViewOwn},
			CreatePerm:   permissions.SalesCreate,
			UpdatePerm:   permissions.SalesUpdate,
			DeletePerm:   permissions.SalesDelete,
			Repo:         store.NewRepository[models.Sale](o.DB),
			Checker:      chk,
			Log:          o.Log,
		})
		mount(api, "/passes", &handlers.Resource[models.Pass, *models.Pass]{
			Name:         "passes",
			ResourceType: permissions.ResourcePass,
			View:         []permissions.Permission{permissions.PassView},
			CreatePerm:   permissions.PassCreate,
			UpdatePerm:   permissions.PassUpdate,
			DeletePerm:   permissions.PassDelete,
			Repo:         store.NewRepository[models.Pass](o.DB),
			Checker:      chk,
			Log:          o.Log,
		})

		tasks := store.NewRepository[models.Task](o.DB)
		mount(api, "/tasks", &handlers.Resource[models.Task, *models.Task]{
			Name:         "tasks",
			ResourceType: permissions.ResourceTasks,
			View:         []permissions.Permission{permissions.TasksViewAll, permissions.TasksViewDepartment, permissions.TasksViewOwn},
			CreatePerm:   permissions.TasksCreate,
			UpdatePerm:   permissions.TasksUpdate,
			DeletePerm:   permissions.TasksDelete,
			ReadOnly:     []string{"assigned_to"},
			Guard:        handlers.TaskGuard,
			Repo:         tasks,
			Checker:      chk,
			Log:          o.Log,
		})
		api.POST("/tasks/:id/assign", handlers.AssignTask(tasks, chk, o.Log))

		// Audit Trail
		api.GET("/audit", requirePerms(chk, permissions.AdminLogs), handlers.ListAudit(o.DB, o.Log))
	}

	return r
}

// mount registers the CRUD routes of a resource. Reads require any of the
// view permissions; writes are checked inside the handlers against the
// record being touched.
func mount[T permissions.Governed, PT handlers.RecordPtr[T]](g *gin.RouterGroup, path string, h *handlers.Resource[T, PT]) {
	view := requirePerms(h.Checker, h.View...)
	g.GET(path, view, h.List())
	g.GET(path+"/:id", view, h.Get())
	g.POST(path, h.Create())
	g.PATCH(path+"/:id", h.Update())
	g.DELETE(path+"/:id", h.Delete())
}

// requirePerms passes when the actor holds any of perms. Denials are audited.
func requirePerms(chk rbac.Checker, perms ...permissions.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := auth.ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		s := chk.For(actor, auth.RequestIDFrom(c))
		if len(perms) == 0 || s.CanAny(perms...) {
			c.Next()
			return
		}
		res := s.Check(perms[0], c.FullPath())
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden", "missing": perms, "reason": res.Reason})
	}
}
