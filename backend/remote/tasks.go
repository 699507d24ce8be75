package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/domain"
)

type TaskService struct {
	client *apiclient.Client
}

// taskListQuery merges filters and pagination into one query string.
type taskListQuery struct {
	domain.TaskFilters
	domain.Pagination
}

func (t *TaskService) List(ctx context.Context, filters domain.TaskFilters, pagination domain.Pagination) (domain.Paginated[domain.Task], error) {
	var raw json.RawMessage
	params := taskListQuery{TaskFilters: filters, Pagination: pagination}
	if err := t.client.Get(ctx, "/tasks", params, &raw); err != nil {
		return domain.Paginated[domain.Task]{}, err
	}

	page, err := decodePage[wireTask](raw)
	if err != nil {
		return domain.Paginated[domain.Task]{}, err
	}
	return mapPage(page, wireTask.toDomain), nil
}

func (t *TaskService) Get(ctx context.Context, id string) (domain.Task, error) {
	return t.taskRequest(ctx, func(raw *json.RawMessage) error {
		return t.client.Get(ctx, "/tasks/"+id, nil, raw)
	})
}

func (t *TaskService) Create(ctx context.Context, data domain.CreateTaskRequest) (domain.Task, error) {
	return t.taskRequest(ctx, func(raw *json.RawMessage) error {
		return t.client.Post(ctx, "/tasks", createTaskToWire(data), raw)
	})
}

func (t *TaskService) Update(ctx context.Context, id string, data domain.UpdateTaskRequest) (domain.Task, error) {
	return t.taskRequest(ctx, func(raw *json.RawMessage) error {
		return t.client.Patch(ctx, "/tasks/"+id, updateTaskToWire(data), raw)
	})
}

func (t *TaskService) Delete(ctx context.Context, id string) error {
	return t.client.Delete(ctx, "/tasks/"+id)
}

func (t *TaskService) ToggleComplete(ctx context.Context, id string) (domain.Task, error) {
	return t.taskRequest(ctx, func(raw *json.RawMessage) error {
		return t.client.Post(ctx, "/tasks/"+id+"/toggle", nil, raw)
	})
}

func (t *TaskService) Upcoming(ctx context.Context, limit int) ([]domain.Task, error) {
	endpoint := "/tasks/upcoming"
	if limit > 0 {
		endpoint = fmt.Sprintf("%s?limit=%d", endpoint, limit)
	}
	return t.taskListRequest(ctx, endpoint)
}

func (t *TaskService) Overdue(ctx context.Context) ([]domain.Task, error) {
	return t.taskListRequest(ctx, "/tasks/overdue")
}

func (t *TaskService) taskRequest(ctx context.Context, call func(*json.RawMessage) error) (domain.Task, error) {
	var raw json.RawMessage
	if err := call(&raw); err != nil {
		return domain.Task{}, err
	}
	task, err := decode[wireTask](raw)
	if err != nil {
		return domain.Task{}, err
	}
	return task.toDomain(), nil
}

func (t *TaskService) taskListRequest(ctx context.Context, endpoint string) ([]domain.Task, error) {
	var raw json.RawMessage
	if err := t.client.Get(ctx, endpoint, nil, &raw); err != nil {
		return nil, err
	}

	// These endpoints return a bare array; decodePage also tolerates a
	// paginated envelope, in which case only the page items are kept.
	page, err := decodePage[wireTask](raw)
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(page.Items))
	for _, task := range page.Items {
		tasks = append(tasks, task.toDomain())
	}
	return tasks, nil
}
