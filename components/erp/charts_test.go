package erp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartCacheStoresEntry(t *testing.T) {
	cache := NewChartCache(time.Minute)
	calls := 0
	render := func() (string, error) {
		calls++
		return "html", nil
	}

	val1, err := cache.GetOrRender("key", render)
	require.NoError(t, err)
	val2, err := cache.GetOrRender("key", render)
	require.NoError(t, err)

	assert.Equal(t, "html", val1)
	assert.Equal(t, val1, val2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cache.Len())
}

func TestChartCacheExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewChartCache(time.Minute)
	cache.now = func() time.Time { return now }
	calls := 0
	render := func() (string, error) {
		calls++
		return "fresh", nil
	}

	_, err := cache.GetOrRender("key", render)
	require.NoError(t, err)
	now = now.Add(2 * time.Minute)
	_, err = cache.GetOrRender("key", render)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestChartCacheDoesNotStoreErrors(t *testing.T) {
	cache := NewChartCache(time.Minute)
	_, err := cache.GetOrRender("key", func() (string, error) { return "", errors.New("boom") })
	assert.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestChartCacheDisabledWithZeroTTL(t *testing.T) {
	cache := NewChartCache(0)
	calls := 0
	render := func() (string, error) {
		calls++
		return "html", nil
	}
	_, _ = cache.GetOrRender("key", render)
	_, _ = cache.GetOrRender("key", render)
	assert.Equal(t, 2, calls)
}

type countingCache struct {
	calls int
	keys  []string
}

func (c *countingCache) GetOrRender(key string, render func() (string, error)) (string, error) {
	c.calls++
	c.keys = append(c.keys, key)
	return render()
}

func TestEChartsProviderRendersChartTypes(t *testing.T) {
	provider := NewEChartsProvider(WithChartCache(nil))
	labels := []string{"Jan", "Feb"}
	for _, chartType := range []string{ChartBar, ChartLine, ChartPie} {
		data, err := provider.Render("w1", ChartSpec{
			Type:   chartType,
			Title:  "Revenue",
			Labels: labels,
			Series: []ChartSeries{{Name: "Revenue", Values: []float64{10, 20}}},
		}, ViewerContext{})
		require.NoError(t, err, chartType)
		assert.NotEmpty(t, data["chart_html"], chartType)
		assert.Equal(t, chartType, data["chart_type"])
		assert.Equal(t, types.ThemeWesteros, data["theme"])
	}
}

func TestEChartsProviderErrors(t *testing.T) {
	provider := NewEChartsProvider(WithChartCache(nil))
	_, err := provider.Render("w1", ChartSpec{Type: ChartBar}, ViewerContext{})
	assert.Error(t, err)
	_, err = provider.Render("w1", ChartSpec{Type: "radar", Series: []ChartSeries{{Name: "x", Values: []float64{1}}}}, ViewerContext{})
	assert.Error(t, err)
}

func TestEChartsProviderUsesThemeResolverAndCache(t *testing.T) {
	cache := &countingCache{}
	provider := NewEChartsProvider(
		WithChartCache(cache),
		WithChartThemeResolver(func(v ViewerContext) string {
			if v.UserID == "dark" {
				return types.ThemeChalk
			}
			return ""
		}),
	)
	spec := ChartSpec{Type: ChartLine, Series: []ChartSeries{{Name: "x", Values: []float64{1, 2}}}}

	data, err := provider.Render("w1", spec, ViewerContext{UserID: "dark"})
	require.NoError(t, err)
	assert.Equal(t, types.ThemeChalk, data["theme"])

	data, err = provider.Render("w1", spec, ViewerContext{UserID: "light"})
	require.NoError(t, err)
	assert.Equal(t, types.ThemeWesteros, data["theme"])

	require.Len(t, cache.keys, 2)
	assert.NotEqual(t, cache.keys[0], cache.keys[1], "themes are part of the cache key")
}

func TestDefaultEChartsAssetsHost(t *testing.T) {
	t.Setenv(EnvEChartsCDN, "https://cdn.example.com/echarts")
	assert.Equal(t, "https://cdn.example.com/echarts/", DefaultEChartsAssetsHost())
	t.Setenv(EnvEChartsCDN, "")
	assert.Equal(t, "", DefaultEChartsAssetsHost())
}

func TestChartCachePurge(t *testing.T) {
	cache := NewChartCache(time.Minute)
	for _, key := range []string{"a", "b"} {
		_, err := cache.GetOrRender(key, func() (string, error) { return key, nil })
		require.NoError(t, err)
	}
	assert.Equal(t, 2, cache.Purge())
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, 0, cache.Purge())

	var nilCache *ChartCache
	assert.Equal(t, 0, nilCache.Purge())
}

func TestChartCacheSweepsExpiredEntriesOnStore(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewChartCache(time.Minute)
	cache.now = func() time.Time { return now }
	_, _ = cache.GetOrRender("old", func() (string, error) { return "old", nil })
	now = now.Add(2 * time.Minute)
	_, _ = cache.GetOrRender("new", func() (string, error) { return "new", nil })
	assert.Equal(t, 1, cache.Len())
}

func TestServiceChartsUseInjectedAssetsHost(t *testing.T) {
	t.Setenv(EnvEChartsCDN, "")
	svc := newTestService(t, Options{
		Layout: []Widget{{ID: "rev", DefinitionID: WidgetRevenueChart, Area: AreaCharts}},
		Charts: []EChartsProviderOption{WithChartAssetsHost(" https://cdn.example.com/echarts ")},
	})
	w, err := svc.Widget(context.Background(), "rev", ViewerContext{})
	require.NoError(t, err)
	assert.Contains(t, w.Data["chart_html"], "https://cdn.example.com/echarts/")
}
