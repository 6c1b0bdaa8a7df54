package dto

import (
	"net/url"
	"strconv"

	"crewlink/shared/constant"
)

// QueryParams carries list pagination and ordering, marshaled onto the query
// string of list endpoints.
type QueryParams struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir string
	Search  string
}

// Defaults returns the default paging window.
func Defaults() QueryParams {
	return QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.DefaultValueLimit,
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}
}

// ToValues converts the params into url.Values, omitting zero values.
func (q QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set(constant.RequestParamPage, strconv.Itoa(q.Page))
	}

	if q.Limit > 0 {
		values.Set(constant.RequestParamLimit, strconv.Itoa(q.Limit))
	}

	if q.SortBy != "" {
		values.Set(constant.RequestParamSortBy, q.SortBy)
	}

	if q.SortDir != "" {
		values.Set(constant.RequestParamSortDir, q.SortDir)
	}

	if q.Search != "" {
		values.Set(constant.RequestParamSearch, q.Search)
	}

	return values
}
