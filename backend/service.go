// Package backend defines the operation-group interfaces every screen
// depends on, and selects between the two interchangeable
// implementations (simulated and remote) once at process start. The
// rest of the application never sees a concrete implementation.
package backend

import (
	"context"

	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/backend/remote"
	"github.com/deadtood/appcore/backend/simulated"
	"github.com/deadtood/appcore/domain"
)

type Auth interface {
	Login(ctx context.Context, credentials domain.LoginRequest) (domain.AuthResponse, error)
	Register(ctx context.Context, data domain.RegisterRequest) (domain.AuthResponse, error)
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (domain.User, error)
	RefreshToken(ctx context.Context) (domain.AuthResponse, error)
}

type Tasks interface {
	List(ctx context.Context, filters domain.TaskFilters, pagination domain.Pagination) (domain.Paginated[domain.Task], error)
	Get(ctx context.Context, id string) (domain.Task, error)
	Create(ctx context.Context, data domain.CreateTaskRequest) (domain.Task, error)
	Update(ctx context.Context, id string, data domain.UpdateTaskRequest) (domain.Task, error)
	Delete(ctx context.Context, id string) error
	ToggleComplete(ctx context.Context, id string) (domain.Task, error)
	Upcoming(ctx context.Context, limit int) ([]domain.Task, error)
	Overdue(ctx context.Context) ([]domain.Task, error)
}

type Courses interface {
	List(ctx context.Context, pagination domain.Pagination) (domain.Paginated[domain.Course], error)
	Get(ctx context.Context, id string) (domain.Course, error)
	Create(ctx context.Context, data domain.CreateCourseRequest) (domain.Course, error)
	Update(ctx context.Context, id string, data domain.UpdateCourseRequest) (domain.Course, error)
	Delete(ctx context.Context, id string) error
	GetWithTasks(ctx context.Context, id string) (domain.CourseWithTasks, error)
}

type Dashboard interface {
	Data(ctx context.Context) (domain.DashboardData, error)
	Stats(ctx context.Context) (domain.DashboardStats, error)
}

type Settings interface {
	Get(ctx context.Context) (domain.UserSettings, error)
	Update(ctx context.Context, data domain.UpdateSettingsRequest) (domain.UserSettings, error)
}

// Services aggregates the per-domain operation groups.
type Services struct {
	Auth      Auth
	Tasks     Tasks
	Courses   Courses
	Dashboard Dashboard
	Settings  Settings
}

// Config is the slice of application configuration the selection needs.
type Config interface {
	UseSimulatedAPI() bool
}

// New wires up either the simulated or the remote implementation. The
// choice is made exactly once; callers hold only the interfaces.
func New(cfg Config, client *apiclient.Client) Services {
	if cfg.UseSimulatedAPI() {
		sim := simulated.New(simulated.WithTokenSource(client.Token))
		return Services{
			Auth:      sim.Auth,
			Tasks:     sim.Tasks,
			Courses:   sim.Courses,
			Dashboard: sim.Dashboard,
			Settings:  sim.Settings,
		}
	}

	rem := remote.New(client)
	return Services{
		Auth:      rem.Auth,
		Tasks:     rem.Tasks,
		Courses:   rem.Courses,
		Dashboard: rem.Dashboard,
		Settings:  rem.Settings,
	}
}

// Both implementations must keep satisfying the shared interfaces.
var (
	_ Auth      = (*simulated.AuthService)(nil)
	_ Tasks     = (*simulated.TaskService)(nil)
	_ Courses   = (*simulated.CourseService)(nil)
	_ Dashboard = (*simulated.DashboardService)(nil)
	_ Settings  = (*simulated.SettingsService)(nil)

	_ Auth      = (*remote.AuthService)(nil)
	_ Tasks     = (*remote.TaskService)(nil)
	_ Courses   = (*remote.CourseService)(nil)
	_ Dashboard = (*remote.DashboardService)(nil)
	_ Settings  = (*remote.SettingsService)(nil)
)
