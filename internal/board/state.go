package board

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// Query parameter names of the board state.
const (
	ParamServiceFilter = "serviceFilter"
	ParamServiceSort   = "serviceSort"
	ParamAdFilter      = "adFilter"
	ParamAdSort        = "adSort"
)

// ViewState is the filter and sort selection of both groups. It lives
// entirely in the page URL.
type ViewState struct {
	ServiceFilter string `url:"serviceFilter,omitempty"`
	ServiceSort   string `url:"serviceSort,omitempty"`
	AdFilter      string `url:"adFilter,omitempty"`
	AdSort        string `url:"adSort,omitempty"`
}

// DefaultViewState shows every assignee sorted by due date.
func DefaultViewState() ViewState {
	return ViewState{
		ServiceFilter: FilterAll,
		ServiceSort:   string(SortDueDate),
		AdFilter:      FilterAll,
		AdSort:        string(SortDueDate),
	}
}

func defaultFor(param string) string {
	switch param {
	case ParamServiceFilter, ParamAdFilter:
		return FilterAll
	default:
		return string(SortDueDate)
	}
}

// ParseViewState reads the state from query values. Missing or empty
// parameters take their default.
func ParseViewState(q url.Values) ViewState {
	s := DefaultViewState()
	for _, param := range []string{ParamServiceFilter, ParamServiceSort, ParamAdFilter, ParamAdSort} {
		if v := q.Get(param); v != "" {
			s = s.With(param, v)
		}
	}
	return s
}

// Get returns the value of param.
func (s ViewState) Get(param string) string {
	switch param {
	case ParamServiceFilter:
		return s.ServiceFilter
	case ParamServiceSort:
		return s.ServiceSort
	case ParamAdFilter:
		return s.AdFilter
	case ParamAdSort:
		return s.AdSort
	}
	return ""
}

// With returns a copy with param set to value. The other fields are left as they are.
func (s ViewState) With(param, value string) ViewState {
	switch param {
	case ParamServiceFilter:
		s.ServiceFilter = value
	case ParamServiceSort:
		s.ServiceSort = value
	case ParamAdFilter:
		s.AdFilter = value
	case ParamAdSort:
		s.AdSort = value
	}
	return s
}

// Values encodes the state, leaving out every field at its default.
func (s ViewState) Values() url.Values {
	trimmed := s
	for _, param := range []string{ParamServiceFilter, ParamServiceSort, ParamAdFilter, ParamAdSort} {
		if trimmed.Get(param) == defaultFor(param) {
			trimmed = trimmed.With(param, "")
		}
	}
	v, err := query.Values(trimmed)
	if err != nil {
		return url.Values{}
	}
	return v
}

// Encode is the query string of the state; empty when everything is default.
func (s ViewState) Encode() string {
	return s.Values().Encode()
}

// URL joins path and the encoded state.
func (s ViewState) URL(path string) string {
	if q := s.Encode(); q != "" {
		return path + "?" + q
	}
	return path
}
