package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

// ExportReportInput requests a rendered report file.
type ExportReportInput struct {
	Request erp.ExportRequest `json:"request"`
	Result  *erp.ExportResult `json:"-"`
}

type exportService interface {
	Export(ctx context.Context, req erp.ExportRequest) (erp.ExportResult, error)
}

// ExportReportCommand wraps Service.Export.
type ExportReportCommand struct {
	service   exportService
	telemetry Telemetry
}

// NewExportReportCommand creates the command.
func NewExportReportCommand(service exportService, telemetry Telemetry) *ExportReportCommand {
	return &ExportReportCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ExportReportInput] = (*ExportReportCommand)(nil)

// Execute renders the report.
func (c *ExportReportCommand) Execute(ctx context.Context, msg ExportReportInput) error {
	if c.service == nil {
		return errors.New("export command requires service")
	}
	result, err := c.service.Export(ctx, msg.Request)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = result
	}
	c.telemetry.Record(ctx, "erp.command.export", map[string]any{
		"filename": result.Filename,
		"bytes":    len(result.Data),
	})
	return nil
}
