package simulated

import (
	"context"
	"sort"

	"github.com/deadtood/appcore/domain"
)

const (
	deadlineWindowDays = 7
	recentCourseCount  = 4
	dashboardTaskCount = 3
)

type DashboardService struct {
	store *store
}

func (d *DashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	if err := d.store.wait(ctx, readDelay); err != nil {
		return domain.DashboardStats{}, err
	}

	d.store.mu.RLock()
	defer d.store.mu.RUnlock()
	return d.store.stats(), nil
}

func (d *DashboardService) Data(ctx context.Context) (domain.DashboardData, error) {
	if err := d.store.wait(ctx, listDelay); err != nil {
		return domain.DashboardData{}, err
	}

	d.store.mu.RLock()
	defer d.store.mu.RUnlock()

	open := make([]domain.Task, 0, len(d.store.tasks))
	for _, task := range d.store.tasks {
		if !task.Completed {
			open = append(open, task)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].DueDate.Before(open[j].DueDate)
	})
	if len(open) > dashboardTaskCount {
		open = open[:dashboardTaskCount]
	}

	recent := d.store.courses
	if len(recent) > recentCourseCount {
		recent = recent[:recentCourseCount]
	}
	recentCopy := make([]domain.Course, len(recent))
	copy(recentCopy, recent)

	return domain.DashboardData{
		Stats:         d.store.stats(),
		UpcomingTasks: open,
		RecentCourses: recentCopy,
	}, nil
}

// stats computes the dashboard counters. Caller must hold at least a
// read lock.
func (s *store) stats() domain.DashboardStats {
	now := s.nowTime()
	deadline := now.AddDate(0, 0, deadlineWindowDays)

	var stats domain.DashboardStats
	stats.CoursesCount = len(s.courses)
	for _, task := range s.tasks {
		if task.Completed {
			stats.TasksCompleted++
			continue
		}
		stats.TasksDue++
		if task.DueDate.Before(now) {
			stats.TasksOverdue++
		}
		if !task.DueDate.Before(now) && !task.DueDate.After(deadline) {
			stats.UpcomingDeadlines++
		}
	}
	if total := len(s.tasks); total > 0 {
		stats.CompletionRate = stats.TasksCompleted * 100 / total
	}
	return stats
}
