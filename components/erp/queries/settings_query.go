package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

type settingsService interface {
	Settings(ctx context.Context, viewer erp.ViewerContext) (erp.Settings, error)
}

// SettingsQuery loads the settings of a viewer.
type SettingsQuery struct {
	service settingsService
}

// NewSettingsQuery builds the query.
func NewSettingsQuery(service settingsService) *SettingsQuery {
	return &SettingsQuery{service: service}
}

var _ gocommand.Querier[erp.ViewerContext, erp.Settings] = (*SettingsQuery)(nil)

// Query returns stored settings or the defaults.
func (q *SettingsQuery) Query(ctx context.Context, viewer erp.ViewerContext) (erp.Settings, error) {
	return q.service.Settings(ctx, viewer)
}
