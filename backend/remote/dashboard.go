package remote

import (
	"context"
	"encoding/json"

	"github.com/deadtood/appcore/apiclient"
	"github.com/deadtood/appcore/domain"
)

type DashboardService struct {
	client *apiclient.Client
}

func (d *DashboardService) Data(ctx context.Context) (domain.DashboardData, error) {
	var raw json.RawMessage
	if err := d.client.Get(ctx, "/dashboard", nil, &raw); err != nil {
		return domain.DashboardData{}, err
	}
	data, err := decode[wireDashboard](raw)
	if err != nil {
		return domain.DashboardData{}, err
	}
	return data.toDomain(), nil
}

func (d *DashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	var raw json.RawMessage
	if err := d.client.Get(ctx, "/dashboard/stats", nil, &raw); err != nil {
		return domain.DashboardStats{}, err
	}
	stats, err := decode[wireStats](raw)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return stats.toDomain(), nil
}
