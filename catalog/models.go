package catalog

import (
	"encoding/json"
	"time"
)

// Dataset is one dataset record as returned by the catalog API, mapped to a
// plain struct. Resources are nested the way the catalog nests them.
type Dataset struct {
	ID           string
	Title        string
	Slug         string
	Description  string
	Organization string
	Tags         []string
	License      string
	CreatedAt    *time.Time
	LastModified *time.Time
	Resources    []Resource
}

// Resource is one downloadable file entry nested in a catalog dataset.
type Resource struct {
	ID           string
	Title        string
	Description  string
	URL          string
	Format       string
	MimeType     string
	FileSize     *int64
	CreatedAt    *time.Time
	LastModified *time.Time
}

// Organization is one entry from the catalog's organizations listing.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// searchResponse is the catalog's paginated search envelope.
type searchResponse struct {
	Data     []datasetPayload `json:"data"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Total    int              `json:"total"`
	NextPage string           `json:"next_page"`
}

type organizationsResponse struct {
	Data     []Organization `json:"data"`
	Total    int            `json:"total"`
	NextPage string         `json:"next_page"`
}

// datasetPayload is the raw catalog dataset document. Tags arrive either as
// strings or as {"name": ...} objects depending on the endpoint, and the
// organization is a nested document.
type datasetPayload struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Slug         string            `json:"slug"`
	Description  string            `json:"description"`
	Organization *struct {
		Name string `json:"name"`
	} `json:"organization"`
	Tags         []json.RawMessage `json:"tags"`
	License      string            `json:"license"`
	CreatedAt    string            `json:"created_at"`
	LastModified string            `json:"last_modified"`
	Resources    []resourcePayload `json:"resources"`
}

type resourcePayload struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	Format       string `json:"format"`
	Mime         string `json:"mime"`
	FileSize     *int64 `json:"filesize"`
	CreatedAt    string `json:"created_at"`
	LastModified string `json:"last_modified"`
}

// timeLayouts are tried in order when parsing catalog timestamps. The catalog
// is not strict about fractional seconds or zone suffixes.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTime parses a catalog timestamp leniently, returning nil when the
// value is empty or matches no known layout.
func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func (p datasetPayload) toDataset() Dataset {
	d := Dataset{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Description:  p.Description,
		License:      p.License,
		CreatedAt:    parseTime(p.CreatedAt),
		LastModified: parseTime(p.LastModified),
	}
	if p.Organization != nil {
		d.Organization = p.Organization.Name
	}
	d.Tags = make([]string, 0, len(p.Tags))
	for _, raw := range p.Tags {
		d.Tags = append(d.Tags, decodeTag(raw))
	}
	d.Resources = make([]Resource, 0, len(p.Resources))
	for _, rp := range p.Resources {
		d.Resources = append(d.Resources, Resource{
			ID:           rp.ID,
			Title:        rp.Title,
			Description:  rp.Description,
			URL:          rp.URL,
			Format:       rp.Format,
			MimeType:     rp.Mime,
			FileSize:     rp.FileSize,
			CreatedAt:    parseTime(rp.CreatedAt),
			LastModified: parseTime(rp.LastModified),
		})
	}
	return d
}

// decodeTag accepts both tag encodings the catalog uses: a bare string or an
// object with a name field.
func decodeTag(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Name
	}
	return ""
}
