package controller

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 200
)

var errInvalidPagination = errors.New("invalid pagination parameters")

type pageRequest struct {
	Page     int
	PageSize int
}

// parsePagination reads ?page= (1-indexed) and ?page_size= (1..200), both optional.
func parsePagination(q url.Values) (pageRequest, error) {
	req := pageRequest{Page: defaultPage, PageSize: defaultPageSize}

	var err error
	if req.Page, err = queryInt(q, "page", defaultPage, 1, 0); err != nil {
		return pageRequest{}, err
	}
	if req.PageSize, err = queryInt(q, "page_size", defaultPageSize, 1, maxPageSize); err != nil {
		return pageRequest{}, err
	}
	return req, nil
}

// queryInt parses an optional integer parameter in [lo, hi]; hi of 0 means unbounded.
func queryInt(q url.Values, name string, fallback, lo, hi int) (int, error) {
	if !q.Has(name) {
		return fallback, nil
	}

	v, err := strconv.ParseInt(q.Get(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: parsing %s: %w", errInvalidPagination, name, err)
	}
	if int(v) < lo || (hi > 0 && int(v) > hi) {
		return 0, fmt.Errorf("%w: %s [%d] out of range", errInvalidPagination, name, v)
	}
	return int(v), nil
}
