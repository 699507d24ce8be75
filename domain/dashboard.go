package domain

type DashboardStats struct {
	TasksDue          int `json:"tasksDue"`
	TasksCompleted    int `json:"tasksCompleted"`
	TasksOverdue      int `json:"tasksOverdue"`
	CoursesCount      int `json:"coursesCount"`
	UpcomingDeadlines int `json:"upcomingDeadlines"`
	CompletionRate    int `json:"completionRate"` // 0-100
}

type DashboardData struct {
	Stats         DashboardStats `json:"stats"`
	UpcomingTasks []Task         `json:"upcomingTasks"`
	RecentCourses []Course       `json:"recentCourses"`
}
