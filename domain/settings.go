package domain

type UserSettings struct {
	Notifications bool   `json:"notifications"`
	DarkMode      bool   `json:"darkMode"`
	Language      string `json:"language"`
	CalendarSync  bool   `json:"calendarSync"`
	ReminderTime  int    `json:"reminderTime"` // minutes before deadline
}

// UpdateSettingsRequest is a partial update; nil fields are left untouched.
type UpdateSettingsRequest struct {
	Notifications *bool   `json:"notifications,omitempty"`
	DarkMode      *bool   `json:"darkMode,omitempty"`
	Language      *string `json:"language,omitempty"`
	CalendarSync  *bool   `json:"calendarSync,omitempty"`
	ReminderTime  *int    `json:"reminderTime,omitempty"`
}
