package domain

import "time"

type CourseIcon string

const (
	IconCalculator CourseIcon = "calculator"
	IconFlask      CourseIcon = "flask"
	IconBook       CourseIcon = "book"
	IconAtom       CourseIcon = "atom"
	IconCode       CourseIcon = "code"
	IconPalette    CourseIcon = "palette"
	IconMusic      CourseIcon = "musical-notes"
	IconGlobe      CourseIcon = "globe"
	IconFitness    CourseIcon = "fitness"
	IconBriefcase  CourseIcon = "briefcase"
)

type Course struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Code               string     `json:"code"`
	Color              string     `json:"color"`
	Icon               CourseIcon `json:"icon"`
	Instructor         string     `json:"instructor,omitempty"`
	Semester           string     `json:"semester,omitempty"`
	Description        string     `json:"description,omitempty"`
	TaskCount          int        `json:"taskCount"`
	CompletedTaskCount int        `json:"completedTaskCount"`
	ActiveTaskCount    int        `json:"activeTaskCount"`
	Progress           int        `json:"progress"` // 0-100
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type CreateCourseRequest struct {
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Color       string     `json:"color"`
	Icon        CourseIcon `json:"icon,omitempty"`
	Instructor  string     `json:"instructor,omitempty"`
	Semester    string     `json:"semester,omitempty"`
	Description string     `json:"description,omitempty"`
}

// UpdateCourseRequest is a partial update; nil fields are left untouched.
type UpdateCourseRequest struct {
	Name        *string     `json:"name,omitempty"`
	Code        *string     `json:"code,omitempty"`
	Color       *string     `json:"color,omitempty"`
	Icon        *CourseIcon `json:"icon,omitempty"`
	Instructor  *string     `json:"instructor,omitempty"`
	Semester    *string     `json:"semester,omitempty"`
	Description *string     `json:"description,omitempty"`
}

// CourseWithTasks bundles a course with all of its tasks.
type CourseWithTasks struct {
	Course Course `json:"course"`
	Tasks  []Task `json:"tasks"`
}
