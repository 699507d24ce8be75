package simulated

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/domain"
	"github.com/google/uuid"
)

const defaultUpcomingLimit = 5

type TaskService struct {
	store *store
}

func errTaskNotFound() *apiclient.Error {
	return &apiclient.Error{Message: "Task not found", StatusCode: http.StatusNotFound}
}

func (t *TaskService) List(ctx context.Context, filters domain.TaskFilters, pagination domain.Pagination) (domain.Paginated[domain.Task], error) {
	if err := t.store.wait(ctx, listDelay); err != nil {
		return domain.Paginated[domain.Task]{}, err
	}

	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	filtered := make([]domain.Task, 0, len(t.store.tasks))
	for _, task := range t.store.tasks {
		if filters.Priority != "" && task.Priority != filters.Priority {
			continue
		}
		if filters.Status != "" && task.Status != filters.Status {
			continue
		}
		if filters.CourseID != "" && task.CourseID != filters.CourseID {
			continue
		}
		if filters.Completed != nil && task.Completed != *filters.Completed {
			continue
		}
		filtered = append(filtered, task)
	}

	return domain.NewPage(filtered, pagination), nil
}

func (t *TaskService) Get(ctx context.Context, id string) (domain.Task, error) {
	if err := t.store.wait(ctx, readDelay); err != nil {
		return domain.Task{}, err
	}

	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	for _, task := range t.store.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return domain.Task{}, errTaskNotFound()
}

func (t *TaskService) Create(ctx context.Context, data domain.CreateTaskRequest) (domain.Task, error) {
	if err := t.store.wait(ctx, writeDelay); err != nil {
		return domain.Task{}, err
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	now := t.store.nowTime()
	task := domain.Task{
		ID:          uuid.New().String(),
		Title:       data.Title,
		Description: data.Description,
		CourseID:    data.CourseID,
		CourseName:  "Unknown Course",
		DueDate:     parseDueDate(data.DueDate, now),
		DueTime:     data.DueTime,
		Priority:    data.Priority,
		Status:      domain.StatusPending,
		Category:    data.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Category == "" {
		task.Category = domain.CategoryOther
	}
	if course, ok := t.store.courseByID(data.CourseID); ok {
		task.CourseName = course.Name
		task.CourseCode = course.Code
		task.CourseColor = course.Color
		task.CourseIcon = course.Icon
	}

	t.store.tasks = append(t.store.tasks, task)
	t.store.recountCourses()
	return task, nil
}

func (t *TaskService) Update(ctx context.Context, id string, data domain.UpdateTaskRequest) (domain.Task, error) {
	if err := t.store.wait(ctx, writeDelay); err != nil {
		return domain.Task{}, err
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	idx := t.store.taskIndex(id)
	if idx < 0 {
		return domain.Task{}, errTaskNotFound()
	}

	task := &t.store.tasks[idx]
	if data.Title != nil {
		task.Title = *data.Title
	}
	if data.Description != nil {
		task.Description = *data.Description
	}
	if data.CourseID != nil {
		task.CourseID = *data.CourseID
		if course, ok := t.store.courseByID(*data.CourseID); ok {
			task.CourseName = course.Name
			task.CourseCode = course.Code
			task.CourseColor = course.Color
			task.CourseIcon = course.Icon
		}
	}
	if data.DueDate != nil {
		task.DueDate = parseDueDate(*data.DueDate, task.DueDate)
	}
	if data.DueTime != nil {
		task.DueTime = *data.DueTime
	}
	if data.Priority != nil {
		task.Priority = *data.Priority
	}
	if data.Status != nil {
		task.Status = *data.Status
	}
	if data.Completed != nil {
		task.Completed = *data.Completed
	}
	task.UpdatedAt = t.store.nowTime()

	t.store.recountCourses()
	return *task, nil
}

// Delete removes the task; deleting an unknown id is a no-op.
func (t *TaskService) Delete(ctx context.Context, id string) error {
	if err := t.store.wait(ctx, readDelay); err != nil {
		return err
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if idx := t.store.taskIndex(id); idx >= 0 {
		t.store.tasks = append(t.store.tasks[:idx], t.store.tasks[idx+1:]...)
		t.store.recountCourses()
	}
	return nil
}

func (t *TaskService) ToggleComplete(ctx context.Context, id string) (domain.Task, error) {
	if err := t.store.wait(ctx, readDelay); err != nil {
		return domain.Task{}, err
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	idx := t.store.taskIndex(id)
	if idx < 0 {
		return domain.Task{}, errTaskNotFound()
	}

	task := &t.store.tasks[idx]
	task.Completed = !task.Completed
	if task.Completed {
		task.Status = domain.StatusCompleted
	} else {
		task.Status = domain.StatusPending
	}
	task.UpdatedAt = t.store.nowTime()

	t.store.recountCourses()
	return *task, nil
}

func (t *TaskService) Upcoming(ctx context.Context, limit int) ([]domain.Task, error) {
	if err := t.store.wait(ctx, readDelay); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}

	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	open := make([]domain.Task, 0, len(t.store.tasks))
	for _, task := range t.store.tasks {
		if !task.Completed {
			open = append(open, task)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].DueDate.Before(open[j].DueDate)
	})
	if len(open) > limit {
		open = open[:limit]
	}
	return open, nil
}

func (t *TaskService) Overdue(ctx context.Context) ([]domain.Task, error) {
	if err := t.store.wait(ctx, readDelay); err != nil {
		return nil, err
	}

	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	now := t.store.nowTime()
	overdue := make([]domain.Task, 0)
	for _, task := range t.store.tasks {
		if !task.Completed && task.DueDate.Before(now) {
			overdue = append(overdue, task)
		}
	}
	return overdue, nil
}

func (s *store) taskIndex(id string) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

// parseDueDate accepts the ISO date form used by create/update
// requests, with RFC3339 as a fallback; unparseable input keeps the
// previous value.
func parseDueDate(raw string, fallback time.Time) time.Time {
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed
	}
	return fallback
}
