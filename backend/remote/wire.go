package remote

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/deadtood/appcore/domain"
	"github.com/pkg/errors"
)

// The canonical wire contract is a bare JSON value. Some deployed
// backend versions still wrap responses in a {success, data} envelope;
// unwrap is the compatibility shim that tolerates both until the
// migration finishes.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

func unwrap(raw json.RawMessage) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Success == nil {
		return raw, nil
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil, errors.New("[unwrap] success envelope missing data")
	}
	return env.Data, nil
}

// decode unwraps an optional envelope and unmarshals the payload.
func decode[T any](raw json.RawMessage) (T, error) {
	var out T
	payload, err := unwrap(raw)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return out, errors.Wrap(err, "[decode] decoding payload")
	}
	return out, nil
}

// wirePage is the paginated list envelope the backend returns. List
// endpoints may instead return a bare array, which decodePage wraps
// into a single page (total = length, no next/prev).
type wirePage[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

func decodePage[W any](raw json.RawMessage) (wirePage[W], error) {
	payload, err := unwrap(raw)
	if err != nil {
		return wirePage[W]{}, err
	}

	if bytes.HasPrefix(bytes.TrimSpace(payload), []byte("[")) {
		var items []W
		if err := json.Unmarshal(payload, &items); err != nil {
			return wirePage[W]{}, errors.Wrap(err, "[decodePage] decoding bare array")
		}
		return wirePage[W]{
			Items:      items,
			Total:      len(items),
			Page:       1,
			Limit:      len(items),
			TotalPages: 1,
		}, nil
	}

	var page wirePage[W]
	if err := json.Unmarshal(payload, &page); err != nil {
		return wirePage[W]{}, errors.Wrap(err, "[decodePage] decoding paginated envelope")
	}
	return page, nil
}

// mapPage converts a decoded wire page into the domain envelope.
func mapPage[W, D any](page wirePage[W], toDomain func(W) D) domain.Paginated[D] {
	items := make([]D, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, toDomain(item))
	}
	return domain.Paginated[D]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
		HasNext:    page.HasNext,
		HasPrev:    page.HasPrev,
	}
}

// parseWireDate accepts the backend's two date renderings: a bare ISO
// date and a full RFC 3339 timestamp.
func parseWireDate(raw string) time.Time {
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed
	}
	return time.Time{}
}

// --- users -----------------------------------------------------------

type wireUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w wireUser) toDomain() domain.User {
	return domain.User{
		ID:        w.ID,
		Email:     w.Email,
		Name:      w.Name,
		Avatar:    w.Avatar,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

type wireAuthResponse struct {
	Token string    `json:"token"`
	User  *wireUser `json:"user"`
}

// --- courses ---------------------------------------------------------

type wireCourse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Code               string `json:"code"`
	Color              string `json:"color"`
	Icon               string `json:"icon"`
	Instructor         string `json:"instructor,omitempty"`
	Semester           string `json:"semester,omitempty"`
	Description        string `json:"description,omitempty"`
	TaskCount          int    `json:"task_count"`
	CompletedTaskCount int    `json:"completed_task_count"`
	ActiveTaskCount    int    `json:"active_task_count"`
	Progress           int    `json:"progress"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

func (w wireCourse) toDomain() domain.Course {
	return domain.Course{
		ID:                 w.ID,
		Name:               w.Name,
		Code:               w.Code,
		Color:              w.Color,
		Icon:               domain.CourseIcon(w.Icon),
		Instructor:         w.Instructor,
		Semester:           w.Semester,
		Description:        w.Description,
		TaskCount:          w.TaskCount,
		CompletedTaskCount: w.CompletedTaskCount,
		ActiveTaskCount:    w.ActiveTaskCount,
		Progress:           w.Progress,
		CreatedAt:          parseWireDate(w.CreatedAt),
		UpdatedAt:          parseWireDate(w.UpdatedAt),
	}
}

type wireCourseWithTasks struct {
	Course wireCourse `json:"course"`
	Tasks  []wireTask `json:"tasks"`
}

type wireCreateCourse struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Color       string `json:"color"`
	Icon        string `json:"icon,omitempty"`
	Instructor  string `json:"instructor,omitempty"`
	Semester    string `json:"semester,omitempty"`
	Description string `json:"description,omitempty"`
}

func createCourseToWire(data domain.CreateCourseRequest) wireCreateCourse {
	return wireCreateCourse{
		Name:        data.Name,
		Code:        data.Code,
		Color:       data.Color,
		Icon:        string(data.Icon),
		Instructor:  data.Instructor,
		Semester:    data.Semester,
		Description: data.Description,
	}
}

type wireUpdateCourse struct {
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	Color       *string `json:"color,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Instructor  *string `json:"instructor,omitempty"`
	Semester    *string `json:"semester,omitempty"`
	Description *string `json:"description,omitempty"`
}

func updateCourseToWire(data domain.UpdateCourseRequest) wireUpdateCourse {
	var icon *string
	if data.Icon != nil {
		s := string(*data.Icon)
		icon = &s
	}
	return wireUpdateCourse{
		Name:        data.Name,
		Code:        data.Code,
		Color:       data.Color,
		Icon:        icon,
		Instructor:  data.Instructor,
		Semester:    data.Semester,
		Description: data.Description,
	}
}

// --- tasks -----------------------------------------------------------

// wireTask carries the course reference both ways the backend renders
// it: a nested course object on newer versions, flat course_* fields
// on older ones. toDomain prefers the nested object.
type wireTask struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	CourseID    string      `json:"course_id"`
	CourseName  string      `json:"course_name,omitempty"`
	CourseCode  string      `json:"course_code,omitempty"`
	CourseColor string      `json:"course_color,omitempty"`
	CourseIcon  string      `json:"course_icon,omitempty"`
	Course      *wireCourse `json:"course,omitempty"`
	DueDate     string      `json:"due_date"`
	DueTime     string      `json:"due_time"`
	Priority    string      `json:"priority"`
	Status      string      `json:"status"`
	Category    string      `json:"category"`
	Completed   bool        `json:"completed"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (w wireTask) toDomain() domain.Task {
	task := domain.Task{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		CourseID:    w.CourseID,
		CourseName:  w.CourseName,
		CourseCode:  w.CourseCode,
		CourseColor: w.CourseColor,
		CourseIcon:  domain.CourseIcon(w.CourseIcon),
		DueDate:     parseWireDate(w.DueDate),
		DueTime:     w.DueTime,
		Priority:    domain.Priority(w.Priority),
		Status:      domain.TaskStatus(w.Status),
		Category:    domain.TaskCategory(w.Category),
		Completed:   w.Completed,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
	if w.Course != nil {
		task.CourseID = w.Course.ID
		task.CourseName = w.Course.Name
		task.CourseCode = w.Course.Code
		task.CourseColor = w.Course.Color
		task.CourseIcon = domain.CourseIcon(w.Course.Icon)
	}
	return task
}

type wireCreateTask struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CourseID    string `json:"course_id"`
	DueDate     string `json:"due_date"`
	DueTime     string `json:"due_time"`
	Priority    string `json:"priority"`
	Category    string `json:"category,omitempty"`
}

func createTaskToWire(data domain.CreateTaskRequest) wireCreateTask {
	return wireCreateTask{
		Title:       data.Title,
		Description: data.Description,
		CourseID:    data.CourseID,
		DueDate:     data.DueDate,
		DueTime:     data.DueTime,
		Priority:    string(data.Priority),
		Category:    string(data.Category),
	}
}

type wireUpdateTask struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	CourseID    *string `json:"course_id,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	DueTime     *string `json:"due_time,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

func updateTaskToWire(data domain.UpdateTaskRequest) wireUpdateTask {
	var priority, status *string
	if data.Priority != nil {
		s := string(*data.Priority)
		priority = &s
	}
	if data.Status != nil {
		s := string(*data.Status)
		status = &s
	}
	return wireUpdateTask{
		Title:       data.Title,
		Description: data.Description,
		CourseID:    data.CourseID,
		DueDate:     data.DueDate,
		DueTime:     data.DueTime,
		Priority:    priority,
		Status:      status,
		Completed:   data.Completed,
	}
}

// --- dashboard -------------------------------------------------------

type wireStats struct {
	TasksDue          int `json:"tasks_due"`
	TasksCompleted    int `json:"tasks_completed"`
	TasksOverdue      int `json:"tasks_overdue"`
	CoursesCount      int `json:"courses_count"`
	UpcomingDeadlines int `json:"upcoming_deadlines"`
	CompletionRate    int `json:"completion_rate"`
}

func (w wireStats) toDomain() domain.DashboardStats {
	return domain.DashboardStats{
		TasksDue:          w.TasksDue,
		TasksCompleted:    w.TasksCompleted,
		TasksOverdue:      w.TasksOverdue,
		CoursesCount:      w.CoursesCount,
		UpcomingDeadlines: w.UpcomingDeadlines,
		CompletionRate:    w.CompletionRate,
	}
}

type wireDashboard struct {
	Stats         wireStats    `json:"stats"`
	UpcomingTasks []wireTask   `json:"upcoming_tasks"`
	RecentCourses []wireCourse `json:"recent_courses"`
}

func (w wireDashboard) toDomain() domain.DashboardData {
	tasks := make([]domain.Task, 0, len(w.UpcomingTasks))
	for _, task := range w.UpcomingTasks {
		tasks = append(tasks, task.toDomain())
	}
	courses := make([]domain.Course, 0, len(w.RecentCourses))
	for _, course := range w.RecentCourses {
		courses = append(courses, course.toDomain())
	}
	return domain.DashboardData{
		Stats:         w.Stats.toDomain(),
		UpcomingTasks: tasks,
		RecentCourses: courses,
	}
}

// --- settings --------------------------------------------------------

type wireSettings struct {
	Notifications bool   `json:"notifications"`
	DarkMode      bool   `json:"dark_mode"`
	Language      string `json:"language"`
	CalendarSync  bool   `json:"calendar_sync"`
	ReminderTime  int    `json:"reminder_time"`
}

func (w wireSettings) toDomain() domain.UserSettings {
	return domain.UserSettings{
		Notifications: w.Notifications,
		DarkMode:      w.DarkMode,
		Language:      w.Language,
		CalendarSync:  w.CalendarSync,
		ReminderTime:  w.ReminderTime,
	}
}

type wireUpdateSettings struct {
	Notifications *bool   `json:"notifications,omitempty"`
	DarkMode      *bool   `json:"dark_mode,omitempty"`
	Language      *string `json:"language,omitempty"`
	CalendarSync  *bool   `json:"calendar_sync,omitempty"`
	ReminderTime  *int    `json:"reminder_time,omitempty"`
}

func updateSettingsToWire(data domain.UpdateSettingsRequest) wireUpdateSettings {
	return wireUpdateSettings{
		Notifications: data.Notifications,
		DarkMode:      data.DarkMode,
		Language:      data.Language,
		CalendarSync:  data.CalendarSync,
		ReminderTime:  data.ReminderTime,
	}
}
