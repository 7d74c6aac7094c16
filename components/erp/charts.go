package erp

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	defaultChartHeight = "360px"
	// EnvEChartsCDN overrides the host ECharts scripts are loaded from.
	EnvEChartsCDN = "ERP_ECHARTS_CDN"
)

// Chart types supported by the renderer.
const (
	ChartBar  = "bar"
	ChartLine = "line"
	ChartPie  = "pie"
)

const defaultChartTTL = 5 * time.Minute

var sharedChartCache = NewChartCache(defaultChartTTL)

// ThemeResolver selects a chart theme per viewer.
type ThemeResolver func(ViewerContext) string

// ChartSeries is one legend entry. Values line up with ChartSpec.Labels.
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// ChartSpec is the data of a chart independent of its rendering.
type ChartSpec struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle,omitempty"`
	Labels   []string      `json:"labels"`
	Series   []ChartSeries `json:"series"`
	Theme    string        `json:"theme,omitempty"`
}

// EChartsProvider renders chart specs to go-echarts markup.
type EChartsProvider struct {
	cache         RenderCache
	theme         string
	themeResolver ThemeResolver
	assetsHost    string
}

// EChartsProviderOption customizes provider behavior.
type EChartsProviderOption func(*EChartsProvider)

// WithChartCache injects a render cache. A nil cache renders on every call.
func WithChartCache(cache RenderCache) EChartsProviderOption {
	return func(p *EChartsProvider) {
		p.cache = cache
	}
}

// WithChartTheme sets a static theme (defaults to Westeros).
func WithChartTheme(theme string) EChartsProviderOption {
	return func(p *EChartsProvider) {
		p.theme = theme
	}
}

// WithChartThemeResolver resolves themes dynamically per viewer.
func WithChartThemeResolver(resolver ThemeResolver) EChartsProviderOption {
	return func(p *EChartsProvider) {
		p.themeResolver = resolver
	}
}

// WithChartAssetsHost rewrites the assets host so ECharts JS loads from a CDN.
func WithChartAssetsHost(host string) EChartsProviderOption {
	return func(p *EChartsProvider) {
		p.assetsHost = ensureTrailingSlash(strings.TrimSpace(host))
	}
}

// NewEChartsProvider builds a chart renderer.
func NewEChartsProvider(options ...EChartsProviderOption) *EChartsProvider {
	p := &EChartsProvider{
		cache:      sharedChartCache,
		theme:      types.ThemeWesteros,
		assetsHost: DefaultEChartsAssetsHost(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Render renders spec and wraps the markup in widget data. Identical specs for
// the same key are served from the cache.
func (p *EChartsProvider) Render(key string, spec ChartSpec, viewer ViewerContext) (WidgetData, error) {
	if len(spec.Series) == 0 {
		return nil, fmt.Errorf("erp: chart series is required")
	}
	if spec.Theme == "" {
		spec.Theme = p.resolveTheme(viewer)
	}
	renderFn := func() (string, error) {
		return p.render(spec)
	}

	var (
		html string
		err  error
	)
	if p.cache != nil {
		html, err = p.cache.GetOrRender(fmt.Sprintf("%s:%s:%s", key, spec.Type, specHash(spec)), renderFn)
	} else {
		html, err = renderFn()
	}
	if err != nil {
		return nil, err
	}
	return WidgetData{
		"chart_html": html,
		"chart_type": spec.Type,
		"title":      spec.Title,
		"subtitle":   spec.Subtitle,
		"theme":      spec.Theme,
		"labels":     spec.Labels,
		"series":     spec.Series,
	}, nil
}

func (p *EChartsProvider) render(spec ChartSpec) (string, error) {
	switch strings.ToLower(spec.Type) {
	case ChartBar:
		bar := charts.NewBar()
		bar.SetGlobalOptions(p.globalChartOptions(spec)...)
		bar.SetXAxis(spec.Labels)
		for _, s := range spec.Series {
			bar.AddSeries(s.Name, toBarData(spec.Labels, s.Values))
		}
		return renderChart(bar)
	case ChartLine:
		line := charts.NewLine()
		line.SetGlobalOptions(p.globalChartOptions(spec)...)
		line.SetXAxis(spec.Labels)
		for _, s := range spec.Series {
			line.AddSeries(s.Name, toLineData(spec.Labels, s.Values))
		}
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		return renderChart(line)
	case ChartPie:
		pie := charts.NewPie()
		pie.SetGlobalOptions(p.globalChartOptions(spec)...)
		for _, s := range spec.Series {
			pie.AddSeries(s.Name, toPieData(spec.Labels, s.Values))
		}
		return renderChart(pie)
	default:
		return "", fmt.Errorf("erp: unsupported chart type: %s", spec.Type)
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (p *EChartsProvider) globalChartOptions(spec ChartSpec) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  spec.Theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if p.assetsHost != "" {
		initOpts.AssetsHost = p.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: spec.Title, Subtitle: spec.Subtitle}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func (p *EChartsProvider) resolveTheme(viewer ViewerContext) string {
	if p.themeResolver != nil {
		if theme := p.themeResolver(viewer); theme != "" {
			return theme
		}
	}
	if p.theme != "" {
		return p.theme
	}
	return types.ThemeWesteros
}

func labelAt(labels []string, i int) string {
	if i < len(labels) && labels[i] != "" {
		return labels[i]
	}
	return fmt.Sprintf("Item %d", i+1)
}

func toBarData(labels []string, values []float64) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Name: labelAt(labels, i), Value: v}
	}
	return data
}

func toLineData(labels []string, values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Name: labelAt(labels, i), Value: v}
	}
	return data
}

func toPieData(labels []string, values []float64) []opts.PieData {
	data := make([]opts.PieData, len(values))
	for i, v := range values {
		data[i] = opts.PieData{Name: labelAt(labels, i), Value: v}
	}
	return data
}

// DefaultEChartsAssetsHost returns the ECharts assets host, respecting ERP_ECHARTS_CDN.
// An empty result keeps the go-echarts default.
func DefaultEChartsAssetsHost() string {
	host := strings.TrimSpace(os.Getenv(EnvEChartsCDN))
	if host == "" {
		return ""
	}
	return ensureTrailingSlash(host)
}

func ensureTrailingSlash(value string) string {
	if value == "" || strings.HasSuffix(value, "/") {
		return value
	}
	return value + "/"
}

// specHash returns a deterministic hash of the chart data.
func specHash(spec ChartSpec) string {
	b, err := json.Marshal(spec)
	if err != nil {
		return "invalid"
	}
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}
