package simulated

import (
	"context"

	"github.com/deadtood/appcore/domain"
)

type SettingsService struct {
	store *store
}

func (s *SettingsService) Get(ctx context.Context) (domain.UserSettings, error) {
	if err := s.store.wait(ctx, readDelay); err != nil {
		return domain.UserSettings{}, err
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return s.store.settings, nil
}

func (s *SettingsService) Update(ctx context.Context, data domain.UpdateSettingsRequest) (domain.UserSettings, error) {
	if err := s.store.wait(ctx, writeDelay); err != nil {
		return domain.UserSettings{}, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	settings := &s.store.settings
	if data.Notifications != nil {
		settings.Notifications = *data.Notifications
	}
	if data.DarkMode != nil {
		settings.DarkMode = *data.DarkMode
	}
	if data.Language != nil {
		settings.Language = *data.Language
	}
	if data.CalendarSync != nil {
		settings.CalendarSync = *data.CalendarSync
	}
	if data.ReminderTime != nil {
		settings.ReminderTime = *data.ReminderTime
	}
	return *settings, nil
}
