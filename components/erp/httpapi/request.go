package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

// FilterPrefix prefixes query parameters that carry field filters.
const FilterPrefix = "filter."

// ParseListRequest reads search, page, page_size and filter.<field> values
// through get, which is usually a bound url.Values.Get.
func ParseListRequest(entity string, get func(string) string) (erp.ListRequest, error) {
	req := erp.ListRequest{Search: get("search")}
	var err error
	if req.Page, err = intParam(get, "page"); err != nil {
		return erp.ListRequest{}, err
	}
	if req.PageSize, err = intParam(get, "page_size"); err != nil {
		return erp.ListRequest{}, err
	}
	for _, field := range filterFields(entity) {
		value := strings.TrimSpace(get(FilterPrefix + field))
		if value == "" || value == "all" {
			continue
		}
		if req.Filters == nil {
			req.Filters = map[string]string{}
		}
		req.Filters[field] = value
	}
	return req, nil
}

func filterFields(entity string) []string {
	fields := []string{"status"}
	if field, ok := erp.FilterField(entity); ok && field != "status" {
		fields = append(fields, field)
	}
	return fields
}

func intParam(get func(string) string, name string) (int, error) {
	raw := strings.TrimSpace(get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", erp.ErrInvalidRequest, name)
	}
	return n, nil
}

// StatusFor maps service errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, erp.ErrUnknownEntity), errors.Is(err, erp.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, erp.ErrDuplicateRecord):
		return http.StatusConflict
	case errors.Is(err, erp.ErrInvalidRequest), errors.Is(err, erp.ErrInvalidRecord), errors.Is(err, erp.ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
