package remote

import (
	"context"
	"encoding/json"

	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/domain"
)

type SettingsService struct {
	client *apiclient.Client
}

func (s *SettingsService) Get(ctx context.Context) (domain.UserSettings, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, "/users/settings", nil, &raw); err != nil {
		return domain.UserSettings{}, err
	}
	settings, err := decode[wireSettings](raw)
	if err != nil {
		return domain.UserSettings{}, err
	}
	return settings.toDomain(), nil
}

func (s *SettingsService) Update(ctx context.Context, data domain.UpdateSettingsRequest) (domain.UserSettings, error) {
	var raw json.RawMessage
	if err := s.client.Patch(ctx, "/users/settings", updateSettingsToWire(data), &raw); err != nil {
		return domain.UserSettings{}, err
	}
	settings, err := decode[wireSettings](raw)
	if err != nil {
		return domain.UserSettings{}, err
	}
	return settings.toDomain(), nil
}
