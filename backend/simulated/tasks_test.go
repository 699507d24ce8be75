package simulated_test

import (
	"context"
	"testing"

	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/backend/simulated"
	"github.com/deadtood/appcore/domain"
	"github.com/deadtood/appcore/internal/utils"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) *simulated.Backend {
	t.Helper()
	return simulated.New(simulated.WithLatency(0))
}

func TestTaskService_ListPagination(t *testing.T) {
	ctx := context.Background()
	sim := newBackend(t)

	t.Run("second page of twenty-five seeded tasks", func(t *testing.T) {
		page, err := sim.Tasks.List(ctx, domain.TaskFilters{}, domain.Pagination{Page: 2, Limit: 10})
		require.NoError(t, err)

		require.Len(t, page.Items, 10)
		require.Equal(t, 25, page.Total)
		require.Equal(t, 2, page.Page)
		require.Equal(t, 10, page.Limit)
		require.Equal(t, 3, page.TotalPages)
		require.True(t, page.HasNext)
		require.True(t, page.HasPrev)
	})

	t.Run("last page is short", func(t *testing.T) {
		page, err := sim.Tasks.List(ctx, domain.TaskFilters{}, domain.Pagination{Page: 3, Limit: 10})
		require.NoError(t, err)

		require.Len(t, page.Items, 5)
		require.False(t, page.HasNext)
		require.True(t, page.HasPrev)
	})

	t.Run("defaults apply when pagination is zero", func(t *testing.T) {
		page, err := sim.Tasks.List(ctx, domain.TaskFilters{}, domain.Pagination{})
		require.NoError(t, err)

		require.Len(t, page.Items, domain.DefaultLimit)
		require.Equal(t, domain.DefaultPage, page.Page)
	})
}

func TestTaskService_ListFilters(t *testing.T) {
	ctx := context.Background()
	sim := newBackend(t)

	t.Run("by priority", func(t *testing.T) {
		page, err := sim.Tasks.List(ctx, domain.TaskFilters{Priority: domain.PriorityHigh}, domain.Pagination{Limit: 100})
		require.NoError(t, err)
		require.NotEmpty(t, page.Items)
		for _, task := range page.Items {
			require.Equal(t, domain.PriorityHigh, task.Priority)
		}
	})

	t.Run("by course", func(t *testing.T) {
		page, err := sim.Tasks.List(ctx, domain.TaskFilters{CourseID: "c1"}, domain.Pagination{Limit: 100})
		require.NoError(t, err)
		require.NotEmpty(t, page.Items)
		for _, task := range page.Items {
			require.Equal(t, "c1", task.CourseID)
		}
	})

	t.Run("by completion", func(t *testing.T) {
		page, err := sim.Tasks.List(ctx, domain.TaskFilters{Completed: utils.Ptr(true)}, domain.Pagination{Limit: 100})
		require.NoError(t, err)
		require.NotEmpty(t, page.Items)
		for _, task := range page.Items {
			require.True(t, task.Completed)
		}
	})

	t.Run("combined filters intersect", func(t *testing.T) {
		page, err := sim.Tasks.List(ctx, domain.TaskFilters{
			CourseID:  "c2",
			Completed: utils.Ptr(false),
		}, domain.Pagination{Limit: 100})
		require.NoError(t, err)
		for _, task := range page.Items {
			require.Equal(t, "c2", task.CourseID)
			require.False(t, task.Completed)
		}
	})
}

func TestTaskService_CreateDenormalisesCourse(t *testing.T) {
	ctx := context.Background()
	sim := newBackend(t)

	task, err := sim.Tasks.Create(ctx, domain.CreateTaskRequest{
		Title:    "Integration worksheet",
		CourseID: "c1",
		DueDate:  "2026-09-15",
		DueTime:  "17:00",
		Priority: domain.PriorityHigh,
	})
	require.NoError(t, err)

	require.NotEmpty(t, task.ID)
	require.Equal(t, "Calculus II", task.CourseName)
	require.Equal(t, "MATH201", task.CourseCode)
	require.Equal(t, domain.IconCalculator, task.CourseIcon)
	require.Equal(t, domain.StatusPending, task.Status)
	require.Equal(t, domain.CategoryOther, task.Category)
	require.Equal(t, 2026, task.DueDate.Year())

	t.Run("visible to subsequent reads", func(t *testing.T) {
		got, err := sim.Tasks.Get(ctx, task.ID)
		require.NoError(t, err)
		require.Equal(t, task.Title, got.Title)
	})

	t.Run("unknown course falls back", func(t *testing.T) {
		orphan, err := sim.Tasks.Create(ctx, domain.CreateTaskRequest{
			Title:    "Stray task",
			CourseID: "nope",
			DueDate:  "2026-09-15",
			DueTime:  "09:00",
			Priority: domain.PriorityLow,
		})
		require.NoError(t, err)
		require.Equal(t, "Unknown Course", orphan.CourseName)
	})
}

func TestTaskService_Mutations(t *testing.T) {
	ctx := context.Background()
	sim := newBackend(t)

	t.Run("toggle flips completion and status", func(t *testing.T) {
		before, err := sim.Tasks.Get(ctx, "t2")
		require.NoError(t, err)
		require.False(t, before.Completed)

		toggled, err := sim.Tasks.ToggleComplete(ctx, "t2")
		require.NoError(t, err)
		require.True(t, toggled.Completed)
		require.Equal(t, domain.StatusCompleted, toggled.Status)

		back, err := sim.Tasks.ToggleComplete(ctx, "t2")
		require.NoError(t, err)
		require.False(t, back.Completed)
		require.Equal(t, domain.StatusPending, back.Status)
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		before, err := sim.Tasks.Get(ctx, "t3")
		require.NoError(t, err)

		updated, err := sim.Tasks.Update(ctx, "t3", domain.UpdateTaskRequest{
			Title:    utils.Ptr("Renamed"),
			Priority: utils.Ptr(domain.PriorityLow),
		})
		require.NoError(t, err)
		require.Equal(t, "Renamed", updated.Title)
		require.Equal(t, domain.PriorityLow, updated.Priority)
		require.Equal(t, before.CourseID, updated.CourseID)
		require.Equal(t, before.DueTime, updated.DueTime)
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		require.NoError(t, sim.Tasks.Delete(ctx, "t4"))

		_, err := sim.Tasks.Get(ctx, "t4")
		require.Error(t, err)
		status, ok := apiclient.StatusCode(err)
		require.True(t, ok)
		require.Equal(t, 404, status)

		// Deleting again stays quiet.
		require.NoError(t, sim.Tasks.Delete(ctx, "t4"))
	})

	t.Run("upcoming is sorted and open-only", func(t *testing.T) {
		upcoming, err := sim.Tasks.Upcoming(ctx, 5)
		require.NoError(t, err)
		require.Len(t, upcoming, 5)
		for i, task := range upcoming {
			require.False(t, task.Completed)
			if i > 0 {
				require.False(t, task.DueDate.Before(upcoming[i-1].DueDate))
			}
		}
	})

	t.Run("overdue are open tasks past due", func(t *testing.T) {
		overdue, err := sim.Tasks.Overdue(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, overdue)
		for _, task := range overdue {
			require.False(t, task.Completed)
		}
	})
}
