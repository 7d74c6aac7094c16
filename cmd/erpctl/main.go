package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/ettle/strcase"
	"github.com/joho/godotenv"
	"github.com/natefinch/atomic"
	"github.com/sirupsen/logrus"

	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

type Globals struct {
	Dataset    string `type:"path" env:"ERP_DATASET" help:"YAML or JSONC dataset replacing the built-in fixtures."`
	LogLevel   string `default:"info" env:"ERP_LOG_LEVEL" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	EChartsCDN string `name:"echarts-cdn" env:"ERP_ECHARTS_CDN" help:"Host serving the ECharts scripts."`

	Out io.Writer `kong:"-"`
}

type cli struct {
	Globals

	List    listCmd    `cmd:"" help:"List a page of customers, employees, products or orders."`
	Show    showCmd    `cmd:"" help:"Show a single record."`
	Stats   statsCmd   `cmd:"" help:"Print the headline numbers of an entity."`
	Export  exportCmd  `cmd:"" help:"Export a report as CSV or PDF."`
	Serve   serveCmd   `cmd:"" help:"Serve the dashboard, list pages and JSON API."`
	Widgets widgetsCmd `cmd:"" help:"List widget definitions or write them to a YAML manifest."`
}

type listCmd struct {
	Entity   string            `arg:"" enum:"customers,employees,products,orders" help:"Entity to list."`
	Search   string            `help:"Case-insensitive search over the entity's text fields."`
	Filter   map[string]string `help:"Field filters as field=value (repeatable)."`
	Page     int               `default:"1" help:"Page number."`
	PageSize int               `name:"page-size" help:"Rows per page (defaults to the entity's page size)."`
	JSON     bool              `name:"json" help:"Print the page as JSON."`
}

type showCmd struct {
	Entity string `arg:"" help:"Entity name."`
	ID     string `arg:"" help:"Record id."`
}

type statsCmd struct {
	Entity string `arg:"" help:"Entity name."`
}

type exportCmd struct {
	Report string `arg:"" enum:"sales,revenue,regions,products,comparison" help:"Report to export."`
	Format string `default:"csv" enum:"csv,pdf" help:"Output format."`
	Months int    `help:"Trailing months to include (3, 6 or 12)."`
	Region string `help:"Region code for the regions report."`
	Out    string `type:"path" help:"Output file (defaults to <report>-report.<format>)."`
}

func main() {
	// ERP_* settings may come from a local .env file.
	_ = godotenv.Load()
	app := &cli{}
	ctx := kong.Parse(app,
		kong.Name("erpctl"),
		kong.Description("Inspect and serve the ERP dashboard data."),
		kong.UsageOnError(),
	)
	app.Out = os.Stdout
	err := ctx.Run(&app.Globals)
	ctx.FatalIfErrorf(err)
}

func (g *Globals) logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(g.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

func (g *Globals) service(logger logrus.FieldLogger, hook erp.NotificationHook) (*erp.Service, error) {
	opts := erp.Options{
		Telemetry:        erp.NewLogTelemetry(logger),
		NotificationHook: hook,
	}
	if g.EChartsCDN != "" {
		opts.Charts = append(opts.Charts, erp.WithChartAssetsHost(g.EChartsCDN))
	}
	if g.Dataset != "" {
		ds, err := erp.LoadDataset(g.Dataset)
		if err != nil {
			return nil, err
		}
		opts.Dataset = &ds
	}
	return erp.NewService(opts), nil
}

func (g *Globals) writer() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (cmd *listCmd) Run(g *Globals) error {
	svc, err := g.service(g.logger(), nil)
	if err != nil {
		return err
	}
	req := erp.ListRequest{
		Search:   cmd.Search,
		Filters:  normalizeFilters(cmd.Filter),
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}
	resp, err := svc.List(context.Background(), cmd.Entity, req)
	if err != nil {
		return err
	}
	if cmd.JSON {
		return writeJSON(g.writer(), resp)
	}
	return writeTable(g.writer(), resp)
}

func (cmd *showCmd) Run(g *Globals) error {
	svc, err := g.service(g.logger(), nil)
	if err != nil {
		return err
	}
	record, err := svc.Record(context.Background(), cmd.Entity, cmd.ID)
	if err != nil {
		return err
	}
	return writeJSON(g.writer(), record)
}

func (cmd *statsCmd) Run(g *Globals) error {
	svc, err := g.service(g.logger(), nil)
	if err != nil {
		return err
	}
	stats, err := svc.Stats(context.Background(), cmd.Entity)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(g.writer(), 0, 4, 2, ' ', 0)
	for _, s := range stats {
		value := fmt.Sprintf("%.0f", s.Value)
		if s.Format == "currency" {
			value = fmt.Sprintf("$%.2f", s.Value)
		}
		fmt.Fprintf(tw, "%s\t%s\n", s.Label, value)
	}
	return tw.Flush()
}

func (cmd *exportCmd) Run(g *Globals) error {
	svc, err := g.service(g.logger(), nil)
	if err != nil {
		return err
	}
	result, err := svc.Export(context.Background(), erp.ExportRequest{
		Report: cmd.Report,
		Format: cmd.Format,
		Months: cmd.Months,
		Region: cmd.Region,
	})
	if err != nil {
		return err
	}
	path := cmd.Out
	if path == "" {
		path = result.Filename
	}
	if err := atomic.WriteFile(path, bytes.NewReader(result.Data)); err != nil {
		return fmt.Errorf("erpctl: write %s: %w", path, err)
	}
	fmt.Fprintf(g.writer(), "✓ Wrote %s (%d bytes)\n", path, len(result.Data))
	return nil
}

// normalizeFilters accepts kebab or camel case field names.
func normalizeFilters(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for field, value := range in {
		out[strcase.ToSnake(strings.TrimSpace(field))] = value
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, resp erp.ListResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := make([]string, len(resp.Columns))
	for i, col := range resp.Columns {
		header[i] = strings.ToUpper(col)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range resp.Rows {
		cells := make([]string, len(resp.Columns))
		for i, col := range resp.Columns {
			cells[i] = erp.FormatCell(col, row.Fields[col])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d to %d of %d results (page %d of %d)\n", resp.From, resp.To, resp.Total, resp.Page, resp.TotalPages)
	return err
}
