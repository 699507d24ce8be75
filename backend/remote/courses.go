package remote

import (
	"context"
	"encoding/json"

	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/domain"
)

type CourseService struct {
	client *apiclient.Client
}

func (c *CourseService) List(ctx context.Context, pagination domain.Pagination) (domain.Paginated[domain.Course], error) {
	var raw json.RawMessage
	if err := c.client.Get(ctx, "/courses", pagination, &raw); err != nil {
		return domain.Paginated[domain.Course]{}, err
	}

	page, err := decodePage[wireCourse](raw)
	if err != nil {
		return domain.Paginated[domain.Course]{}, err
	}
	return mapPage(page, wireCourse.toDomain), nil
}

func (c *CourseService) Get(ctx context.Context, id string) (domain.Course, error) {
	return c.courseRequest(func(raw *json.RawMessage) error {
		return c.client.Get(ctx, "/courses/"+id, nil, raw)
	})
}

func (c *CourseService) Create(ctx context.Context, data domain.CreateCourseRequest) (domain.Course, error) {
	return c.courseRequest(func(raw *json.RawMessage) error {
		return c.client.Post(ctx, "/courses", createCourseToWire(data), raw)
	})
}

func (c *CourseService) Update(ctx context.Context, id string, data domain.UpdateCourseRequest) (domain.Course, error) {
	return c.courseRequest(func(raw *json.RawMessage) error {
		return c.client.Patch(ctx, "/courses/"+id, updateCourseToWire(data), raw)
	})
}

func (c *CourseService) Delete(ctx context.Context, id string) error {
	return c.client.Delete(ctx, "/courses/"+id)
}

func (c *CourseService) GetWithTasks(ctx context.Context, id string) (domain.CourseWithTasks, error) {
	var raw json.RawMessage
	if err := c.client.Get(ctx, "/courses/"+id+"/with-tasks", nil, &raw); err != nil {
		return domain.CourseWithTasks{}, err
	}

	bundle, err := decode[wireCourseWithTasks](raw)
	if err != nil {
		return domain.CourseWithTasks{}, err
	}

	tasks := make([]domain.Task, 0, len(bundle.Tasks))
	for _, task := range bundle.Tasks {
		tasks = append(tasks, task.toDomain())
	}
	return domain.CourseWithTasks{Course: bundle.Course.toDomain(), Tasks: tasks}, nil
}

func (c *CourseService) courseRequest(call func(*json.RawMessage) error) (domain.Course, error) {
	var raw json.RawMessage
	if err := call(&raw); err != nil {
		return domain.Course{}, err
	}
	course, err := decode[wireCourse](raw)
	if err != nil {
		return domain.Course{}, err
	}
	return course.toDomain(), nil
}
