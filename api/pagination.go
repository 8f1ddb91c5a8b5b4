package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/opendatamirror/dp-catalog-sync/storage"
)

// pageEnvelope is the paginated list response shape. next and previous are
// full request URLs, or null at either end of the window.
type pageEnvelope struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// pageRequest is the decoded ?page=&page_size= pair.
type pageRequest struct {
	number int
	size   int
}

// parsePage reads the pagination parameters, applying the default and the
// cap. An unparseable or non-positive value falls back to the default.
func (a *API) parsePage(r *http.Request) pageRequest {
	p := pageRequest{number: 1, size: a.defaultPageSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.number = n
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.size = n
		}
	}
	if p.size > a.maxPageSize {
		p.size = a.maxPageSize
	}
	return p
}

func (p pageRequest) window() storage.Page {
	return storage.Page{
		Limit:  p.size,
		Offset: (p.number - 1) * p.size,
	}
}

// envelope wraps results with the total count and neighbour page links built
// from the request URL.
func envelope(r *http.Request, p pageRequest, count int, results interface{}) pageEnvelope {
	e := pageEnvelope{Count: count, Results: results}
	if p.number*p.size < count {
		e.Next = pageURL(r, p.number+1)
	}
	if p.number > 1 {
		e.Previous = pageURL(r, p.number-1)
	}
	return e
}

func pageURL(r *http.Request, page int) *string {
	u := *r.URL
	q := u.Query()
	q.Set("page", fmt.Sprintf("%d", page))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
