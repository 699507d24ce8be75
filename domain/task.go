package domain

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
	StatusOverdue    TaskStatus = "overdue"
)

type TaskCategory string

const (
	CategoryMath       TaskCategory = "math"
	CategoryChemistry  TaskCategory = "chemistry"
	CategoryPhysics    TaskCategory = "physics"
	CategoryLiterature TaskCategory = "literature"
	CategoryOther      TaskCategory = "other"
)

// Task is the flattened domain record. The course reference fields
// (CourseName, CourseCode, ...) are denormalised from the owning
// course so list screens never need a second lookup.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	CourseID    string       `json:"courseId"`
	CourseName  string       `json:"courseName"`
	CourseCode  string       `json:"courseCode,omitempty"`
	CourseColor string       `json:"courseColor,omitempty"`
	CourseIcon  CourseIcon   `json:"courseIcon,omitempty"`
	DueDate     time.Time    `json:"dueDate"`
	DueTime     string       `json:"dueTime"`
	Priority    Priority     `json:"priority"`
	Status      TaskStatus   `json:"status"`
	Category    TaskCategory `json:"category"`
	Completed   bool         `json:"completed"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// CreateTaskRequest carries the fields a caller may set when creating
// a task. DueDate is an ISO "2006-01-02" date string.
type CreateTaskRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	CourseID    string       `json:"courseId"`
	DueDate     string       `json:"dueDate"`
	DueTime     string       `json:"dueTime"`
	Priority    Priority     `json:"priority"`
	Category    TaskCategory `json:"category,omitempty"`
}

// UpdateTaskRequest is a partial update; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	CourseID    *string     `json:"courseId,omitempty"`
	DueDate     *string     `json:"dueDate,omitempty"`
	DueTime     *string     `json:"dueTime,omitempty"`
	Priority    *Priority   `json:"priority,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
	Completed   *bool       `json:"completed,omitempty"`
}

// TaskFilters narrows task list queries. The url tags are the wire
// query-parameter names the list endpoint accepts; zero values are
// omitted from the query string.
type TaskFilters struct {
	Priority  Priority   `url:"priority,omitempty" json:"priority,omitempty"`
	Status    TaskStatus `url:"status,omitempty" json:"status,omitempty"`
	CourseID  string     `url:"course_id,omitempty" json:"courseId,omitempty"`
	Completed *bool      `url:"completed,omitempty" json:"completed,omitempty"`
}
