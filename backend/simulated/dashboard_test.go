package simulated_test

import (
	"context"
	"testing"

	"github.com/deadtood/appcore/domain"
	"github.com/deadtood/appcore/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	sim := newBackend(t)

	stats, err := sim.Dashboard.Stats(ctx)
	require.NoError(t, err)

	require.Equal(t, 6, stats.CoursesCount)
	require.Equal(t, 25, stats.TasksDue+stats.TasksCompleted)
	require.Positive(t, stats.TasksOverdue)
	require.Equal(t, stats.TasksCompleted*100/25, stats.CompletionRate)

	t.Run("completing a task moves the counters", func(t *testing.T) {
		_, err := sim.Tasks.ToggleComplete(ctx, "t2")
		require.NoError(t, err)

		after, err := sim.Dashboard.Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, stats.TasksCompleted+1, after.TasksCompleted)
		require.Equal(t, stats.TasksDue-1, after.TasksDue)
	})
}

func TestDashboardService_Data(t *testing.T) {
	ctx := context.Background()
	sim := newBackend(t)

	data, err := sim.Dashboard.Data(ctx)
	require.NoError(t, err)

	require.Len(t, data.UpcomingTasks, 3)
	require.Len(t, data.RecentCourses, 4)
	for _, task := range data.UpcomingTasks {
		require.False(t, task.Completed)
	}
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	sim := newBackend(t)

	before, err := sim.Settings.Get(ctx)
	require.NoError(t, err)
	require.True(t, before.Notifications)
	require.Equal(t, "en", before.Language)

	after, err := sim.Settings.Update(ctx, domain.UpdateSettingsRequest{
		DarkMode:     utils.Ptr(true),
		ReminderTime: utils.Ptr(60),
	})
	require.NoError(t, err)
	require.True(t, after.DarkMode)
	require.Equal(t, 60, after.ReminderTime)
	// Untouched fields survive a partial update.
	require.True(t, after.Notifications)
	require.Equal(t, "en", after.Language)
}
