package simulated

import (
	"context"
	"net/http"

	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/domain"
	"github.com/google/uuid"
)

type CourseService struct {
	store *store
}

func errCourseNotFound() *apiclient.Error {
	return &apiclient.Error{Message: "Course not found", StatusCode: http.StatusNotFound}
}

func (c *CourseService) List(ctx context.Context, pagination domain.Pagination) (domain.Paginated[domain.Course], error) {
	if err := c.store.wait(ctx, listDelay); err != nil {
		return domain.Paginated[domain.Course]{}, err
	}

	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	courses := make([]domain.Course, len(c.store.courses))
	copy(courses, c.store.courses)
	return domain.NewPage(courses, pagination), nil
}

func (c *CourseService) Get(ctx context.Context, id string) (domain.Course, error) {
	if err := c.store.wait(ctx, readDelay); err != nil {
		return domain.Course{}, err
	}

	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	if course, ok := c.store.courseByID(id); ok {
		return course, nil
	}
	return domain.Course{}, errCourseNotFound()
}

func (c *CourseService) Create(ctx context.Context, data domain.CreateCourseRequest) (domain.Course, error) {
	if err := c.store.wait(ctx, writeDelay); err != nil {
		return domain.Course{}, err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	now := c.store.nowTime()
	course := domain.Course{
		ID:          uuid.New().String(),
		Name:        data.Name,
		Code:        data.Code,
		Color:       data.Color,
		Icon:        data.Icon,
		Instructor:  data.Instructor,
		Semester:    data.Semester,
		Description: data.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if course.Icon == "" {
		course.Icon = domain.IconBook
	}

	c.store.courses = append(c.store.courses, course)
	return course, nil
}

func (c *CourseService) Update(ctx context.Context, id string, data domain.UpdateCourseRequest) (domain.Course, error) {
	if err := c.store.wait(ctx, writeDelay); err != nil {
		return domain.Course{}, err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	idx := c.store.courseIndex(id)
	if idx < 0 {
		return domain.Course{}, errCourseNotFound()
	}

	course := &c.store.courses[idx]
	if data.Name != nil {
		course.Name = *data.Name
	}
	if data.Code != nil {
		course.Code = *data.Code
	}
	if data.Color != nil {
		course.Color = *data.Color
	}
	if data.Icon != nil {
		course.Icon = *data.Icon
	}
	if data.Instructor != nil {
		course.Instructor = *data.Instructor
	}
	if data.Semester != nil {
		course.Semester = *data.Semester
	}
	if data.Description != nil {
		course.Description = *data.Description
	}
	course.UpdatedAt = c.store.nowTime()

	return *course, nil
}

// Delete removes the course; deleting an unknown id is a no-op.
func (c *CourseService) Delete(ctx context.Context, id string) error {
	if err := c.store.wait(ctx, readDelay); err != nil {
		return err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if idx := c.store.courseIndex(id); idx >= 0 {
		c.store.courses = append(c.store.courses[:idx], c.store.courses[idx+1:]...)
	}
	return nil
}

func (c *CourseService) GetWithTasks(ctx context.Context, id string) (domain.CourseWithTasks, error) {
	if err := c.store.wait(ctx, listDelay); err != nil {
		return domain.CourseWithTasks{}, err
	}

	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	course, ok := c.store.courseByID(id)
	if !ok {
		return domain.CourseWithTasks{}, errCourseNotFound()
	}

	tasks := make([]domain.Task, 0)
	for _, task := range c.store.tasks {
		if task.CourseID == id {
			tasks = append(tasks, task)
		}
	}
	return domain.CourseWithTasks{Course: course, Tasks: tasks}, nil
}

func (s *store) courseByID(id string) (domain.Course, bool) {
	if idx := s.courseIndex(id); idx >= 0 {
		return s.courses[idx], true
	}
	return domain.Course{}, false
}

func (s *store) courseIndex(id string) int {
	for i, course := range s.courses {
		if course.ID == id {
			return i
		}
	}
	return -1
}

// recountCourses refreshes the denormalised task counters on every
// course. Caller must hold the write lock (or be the seeder).
func (s *store) recountCourses() {
	for i := range s.courses {
		course := &s.courses[i]
		course.TaskCount = 0
		course.CompletedTaskCount = 0
		for _, task := range s.tasks {
			if task.CourseID != course.ID {
				continue
			}
			course.TaskCount++
			if task.Completed {
				course.CompletedTaskCount++
			}
		}
		course.ActiveTaskCount = course.TaskCount - course.CompletedTaskCount
		course.Progress = 0
		if course.TaskCount > 0 {
			course.Progress = course.CompletedTaskCount * 100 / course.TaskCount
		}
	}
}
