package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

// SaveSettingsInput stores the settings of a viewer.
type SaveSettingsInput struct {
	Viewer   erp.ViewerContext `json:"viewer"`
	Settings erp.Settings      `json:"settings"`
	Result   *erp.Settings     `json:"-"`
}

type settingsService interface {
	SaveSettings(ctx context.Context, viewer erp.ViewerContext, settings erp.Settings) (erp.Settings, error)
}

// SaveSettingsCommand wraps Service.SaveSettings.
type SaveSettingsCommand struct {
	service   settingsService
	telemetry Telemetry
}

// NewSaveSettingsCommand creates the command.
func NewSaveSettingsCommand(service settingsService, telemetry Telemetry) *SaveSettingsCommand {
	return &SaveSettingsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SaveSettingsInput] = (*SaveSettingsCommand)(nil)

// Execute saves the settings.
func (c *SaveSettingsCommand) Execute(ctx context.Context, msg SaveSettingsInput) error {
	if c.service == nil {
		return errors.New("save settings command requires service")
	}
	saved, err := c.service.SaveSettings(ctx, msg.Viewer, msg.Settings)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = saved
	}
	c.telemetry.Record(ctx, "erp.command.settings.save", map[string]any{
		"user_id":  msg.Viewer.UserID,
		"language": saved.Language,
	})
	return nil
}
