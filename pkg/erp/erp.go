package erp

import (
	core "github.com/goliatone/go-erp-dashboard/components/erp"
)

// Service exposes the underlying components/erp.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// ListRequest re-export for convenience.
type ListRequest = core.ListRequest

// ListResponse re-export for convenience.
type ListResponse = core.ListResponse

// Dataset re-export for convenience.
type Dataset = core.Dataset

// Settings re-export for convenience.
type Settings = core.Settings

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// LoadDataset proxies to the YAML or JSONC dataset loader.
func LoadDataset(path string) (Dataset, error) {
	return core.LoadDataset(path)
}
