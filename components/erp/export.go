package erp

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// Export formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// ExportRequest selects a report and its output format.
type ExportRequest struct {
	Report string `json:"report"`
	Format string `json:"format"`
	Months int    `json:"months,omitempty"`
	Region string `json:"region,omitempty"`
}

// ExportResult is a rendered report file.
type ExportResult struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// Table is a report flattened to rows of text.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Export renders a report as CSV or PDF.
func (s *Service) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	req.Format = strings.ToLower(req.Format)
	if err := s.opts.Validator.Validate("erp.export_request", exportRequestSchema, req); err != nil {
		return ExportResult{}, err
	}
	table, err := s.ReportTable(ctx, req)
	if err != nil {
		return ExportResult{}, err
	}

	var (
		data        []byte
		contentType string
	)
	switch req.Format {
	case FormatCSV:
		data, err = renderCSV(table)
		contentType = "text/csv"
	case FormatPDF:
		data, err = renderPDF(table)
		contentType = "application/pdf"
	default:
		err = fmt.Errorf("%w: unsupported format %q", ErrInvalidRequest, req.Format)
	}
	if err != nil {
		s.recordTelemetry(ctx, "erp.export", map[string]any{"report": req.Report, "format": req.Format, "error": err.Error()})
		return ExportResult{}, err
	}

	s.recordTelemetry(ctx, "erp.export", map[string]any{
		"report": req.Report,
		"format": req.Format,
		"bytes":  len(data),
	})
	s.notify(ctx, newNotification(LevelSuccess, "Report exported as "+strings.ToUpper(req.Format), table.Title+" is ready to download.", "", ""))
	return ExportResult{
		Filename:    fmt.Sprintf("%s-report.%s", req.Report, req.Format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// ReportTable flattens the requested report into a table.
func (s *Service) ReportTable(ctx context.Context, req ExportRequest) (Table, error) {
	switch req.Report {
	case ReportRevenue:
		rows := [][]string{}
		for _, p := range s.RevenueWindow(ctx, req.Months) {
			rows = append(rows, []string{p.Month, money(p.Revenue), money(p.Profit)})
		}
		return Table{Title: "Revenue Report", Header: []string{"Month", "Revenue", "Profit"}, Rows: rows}, nil
	case ReportSales:
		rows := [][]string{}
		for _, p := range trailing(s.SalesSeries(ctx), req.Months) {
			rows = append(rows, []string{p.Month, number(p.Sales), number(p.Target)})
		}
		return Table{Title: "Sales Report", Header: []string{"Month", "Sales", "Target"}, Rows: rows}, nil
	case ReportRegions:
		rows := [][]string{}
		for _, r := range s.SalesByRegion(ctx, req.Region) {
			rows = append(rows, []string{r.Region, money(r.Sales)})
		}
		return Table{Title: "Sales by Region", Header: []string{"Region", "Sales"}, Rows: rows}, nil
	case ReportProducts:
		rows := [][]string{}
		for _, p := range s.TopProducts(ctx, defaultTopProducts) {
			rows = append(rows, []string{p.Name, p.Category, strconv.Itoa(p.Sales), money(p.Revenue)})
		}
		return Table{Title: "Top Products", Header: []string{"Product", "Category", "Units", "Revenue"}, Rows: rows}, nil
	case ReportComparison:
		rows := [][]string{}
		for _, m := range s.MonthlyComparison(ctx) {
			rows = append(rows, []string{m.Label, number(m.Current), number(m.Previous), fmt.Sprintf("%+.1f%%", m.Change())})
		}
		return Table{Title: "Monthly Comparison", Header: []string{"Metric", "Current", "Previous", "Change"}, Rows: rows}, nil
	default:
		return Table{}, fmt.Errorf("%w: unknown report %q", ErrInvalidRequest, req.Report)
	}
}

func renderCSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, fmt.Errorf("erp: write csv header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("erp: write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPDF(t Table) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(t.Title, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, t.Title)
	pdf.Ln(14)

	width := 190.0
	if len(t.Header) > 0 {
		width = 190.0 / float64(len(t.Header))
	}
	pdf.SetFont("Helvetica", "B", 11)
	for _, h := range t.Header {
		pdf.CellFormat(width, 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range t.Rows {
		for _, cell := range row {
			pdf.CellFormat(width, 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("erp: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
