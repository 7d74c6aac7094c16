package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

// ListInput selects an entity page.
type ListInput struct {
	Entity  string
	Request erp.ListRequest
}

type listService interface {
	List(ctx context.Context, entity string, req erp.ListRequest) (erp.ListResponse, error)
}

// ListQuery runs the filter, paginate and summarize pipeline for an entity.
type ListQuery struct {
	service listService
}

// NewListQuery builds the query.
func NewListQuery(service listService) *ListQuery {
	return &ListQuery{service: service}
}

var _ gocommand.Querier[ListInput, erp.ListResponse] = (*ListQuery)(nil)

// Query returns the requested page.
func (q *ListQuery) Query(ctx context.Context, input ListInput) (erp.ListResponse, error) {
	return q.service.List(ctx, input.Entity, input.Request)
}

// RecordInput identifies a single record.
type RecordInput struct {
	Entity string
	ID     string
}

type recordService interface {
	Record(ctx context.Context, entity, id string) (any, error)
}

// RecordQuery fetches one record by id.
type RecordQuery struct {
	service recordService
}

// NewRecordQuery builds the query.
func NewRecordQuery(service recordService) *RecordQuery {
	return &RecordQuery{service: service}
}

var _ gocommand.Querier[RecordInput, any] = (*RecordQuery)(nil)

// Query returns the record.
func (q *RecordQuery) Query(ctx context.Context, input RecordInput) (any, error) {
	return q.service.Record(ctx, input.Entity, input.ID)
}

type statsService interface {
	Stats(ctx context.Context, entity string) ([]erp.Stat, error)
}

// StatsQuery returns the stat cards of an entity.
type StatsQuery struct {
	service statsService
}

// NewStatsQuery builds the query.
func NewStatsQuery(service statsService) *StatsQuery {
	return &StatsQuery{service: service}
}

var _ gocommand.Querier[string, []erp.Stat] = (*StatsQuery)(nil)

// Query computes the stats of the named entity.
func (q *StatsQuery) Query(ctx context.Context, entity string) ([]erp.Stat, error) {
	return q.service.Stats(ctx, entity)
}
