package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
)

// searchPageSize is the page size used when paging through search results.
const searchPageSize = 20

// HTTPClient is the subset of http.Client the catalog client needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the open-data catalog's HTTP API. It maps responses to
// plain records and surfaces failures as *FetchError. It never retries.
type Client struct {
	baseURL   string
	userAgent string
	hc        HTTPClient
}

// New returns a catalog client for the API rooted at baseURL.
func New(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		hc:        &http.Client{Timeout: timeout},
	}
}

// NewWithHTTPClient returns a catalog client using the given HTTP client,
// which tests substitute.
func NewWithHTTPClient(baseURL, userAgent string, hc HTTPClient) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		hc:        hc,
	}
}

// SearchPage is one page of catalog search results.
type SearchPage struct {
	Datasets []Dataset
	Total    int
	HasNext  bool
}

// SearchDatasets fetches a single page of datasets matching query.
func (c *Client) SearchDatasets(ctx context.Context, query string, page, pageSize int) (*SearchPage, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))
	u := fmt.Sprintf("%s/datasets/?%s", c.baseURL, params.Encode())

	var payload searchResponse
	status, err := c.getJSON(ctx, u, &payload)
	if err != nil {
		return nil, &FetchError{Query: query, URL: u, StatusCode: status, Err: err}
	}

	result := &SearchPage{
		Total:   payload.Total,
		HasNext: payload.NextPage != "",
	}
	result.Datasets = make([]Dataset, 0, len(payload.Data))
	for _, p := range payload.Data {
		result.Datasets = append(result.Datasets, p.toDataset())
	}
	return result, nil
}

// SearchAll pages through search results until limit datasets have been
// collected or the catalog runs out of matches.
func (c *Client) SearchAll(ctx context.Context, query string, limit int) ([]Dataset, error) {
	if limit <= 0 {
		return nil, nil
	}

	var datasets []Dataset
	for page := 1; len(datasets) < limit; page++ {
		pageSize := searchPageSize
		if remaining := limit - len(datasets); remaining < pageSize {
			pageSize = remaining
		}

		result, err := c.SearchDatasets(ctx, query, page, pageSize)
		if err != nil {
			return nil, err
		}
		if len(result.Datasets) == 0 {
			break
		}

		datasets = append(datasets, result.Datasets...)
		if !result.HasNext || len(result.Datasets) < pageSize {
			break
		}
	}

	if len(datasets) > limit {
		datasets = datasets[:limit]
	}
	return datasets, nil
}

// GetDataset fetches the full record for a single dataset by its catalog id.
// A 404 response wraps ErrDatasetNotFound.
func (c *Client) GetDataset(ctx context.Context, id string) (*Dataset, error) {
	u := fmt.Sprintf("%s/datasets/%s/", c.baseURL, url.PathEscape(id))

	var payload datasetPayload
	status, err := c.getJSON(ctx, u, &payload)
	if err != nil {
		if status == http.StatusNotFound {
			err = ErrDatasetNotFound
		}
		return nil, &FetchError{DatasetID: id, URL: u, StatusCode: status, Err: err}
	}

	d := payload.toDataset()
	return &d, nil
}

// ListOrganizations fetches one page of catalog organizations.
func (c *Client) ListOrganizations(ctx context.Context, page, pageSize int) ([]Organization, int, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))
	u := fmt.Sprintf("%s/organizations/?%s", c.baseURL, params.Encode())

	var payload organizationsResponse
	status, err := c.getJSON(ctx, u, &payload)
	if err != nil {
		return nil, 0, &FetchError{URL: u, StatusCode: status, Err: err}
	}
	return payload.Data, payload.Total, nil
}

// DownloadResource streams the file at the given URL. The caller owns the
// returned body and must close it.
func (c *Client) DownloadResource(ctx context.Context, fileURL string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, 0, &FetchError{URL: fileURL, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, 0, &FetchError{URL: fileURL, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, &FetchError{
			URL:        fileURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response status %d", resp.StatusCode),
		}
	}
	return resp.Body, resp.ContentLength, nil
}

// Checker is called by the healthcheck library to check the catalog API is
// reachable.
func (c *Client) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	_, err := c.SearchDatasets(ctx, "", 1, 1)
	if err != nil {
		log.Warn(ctx, "catalog healthcheck failed", log.Data{"error": err.Error()})
		return state.Update(healthcheck.StatusCritical, err.Error(), 0)
	}
	return state.Update(healthcheck.StatusOK, "catalog API is reachable", http.StatusOK)
}

// getJSON issues a GET for u and decodes the JSON body into out, returning
// the response status code where one was received.
func (c *Client) getJSON(ctx context.Context, u string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body) // nolint
		return resp.StatusCode, fmt.Errorf("unexpected response status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("could not decode JSON response: %w", err)
	}
	return resp.StatusCode, nil
}
