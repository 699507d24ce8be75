// Package remote is the live-backend implementation of the service
// interfaces. It translates between the wire schema (snake_case,
// nested course objects) and the domain schema (camelCase, flattened
// course references) and delegates all I/O and error classification
// to the transport client.
package remote

import (
	"github.com/deadtood/appcore/apiclient"
)

// Backend bundles the remote per-domain services around one transport
// client.
type Backend struct {
	Auth      *AuthService
	Tasks     *TaskService
	Courses   *CourseService
	Dashboard *DashboardService
	Settings  *SettingsService
}

func New(client *apiclient.Client) *Backend {
	return &Backend{
		Auth:      &AuthService{client: client},
		Tasks:     &TaskService{client: client},
		Courses:   &CourseService{client: client},
		Dashboard: &DashboardService{client: client},
		Settings:  &SettingsService{client: client},
	}
}
