package books

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"bookmates/model"
	"github.com/pkg/errors"
)

const defaultMetadataBaseURL = "https://openlibrary.org"

// BookResult is one hit from the metadata provider, trimmed to the fields the
// shelf UI needs.
type BookResult struct {
	ExternalID string   `json:"externalId"`
	Title      string   `json:"title"`
	Authors    []string `json:"authors"`
	CoverURL   string   `json:"coverUrl"`
	Pages      int      `json:"pages"`
}

// MetadataClient queries an Open Library compatible search endpoint. BaseURL
// is injectable so tests can point it at a local httptest server.
type MetadataClient struct {
	BaseURL string
	Client  *http.Client
}

func NewMetadataClient() *MetadataClient {
	return &MetadataClient{
		BaseURL: defaultMetadataBaseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// searchResponse mirrors the subset of the provider's payload we consume.
type searchResponse struct {
	Docs []struct {
		Key           string   `json:"key"`
		Title         string   `json:"title"`
		AuthorName    []string `json:"author_name"`
		CoverI        int      `json:"cover_i"`
		NumberOfPages int      `json:"number_of_pages_median"`
	} `json:"docs"`
}

// Search looks up books by free-form query, returning at most limit results.
// Provider failures are passed through as ErrInternal with no retry.
func (c *MetadataClient) Search(query string, limit int) ([]BookResult, error) {
	if query == "" {
		return nil, errors.Wrap(model.ErrValidation, "search query must not be empty")
	}
	if limit <= 0 {
		limit = 10
	}

	u := fmt.Sprintf("%s/search.json?q=%s&limit=%d", c.BaseURL, url.QueryEscape(query), limit)
	resp, err := c.Client.Get(u)
	if err != nil {
		return nil, errors.Wrap(model.ErrInternal, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(model.ErrInternal, "metadata provider returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(model.ErrInternal, err.Error())
	}

	results := []BookResult{}
	for _, doc := range payload.Docs {
		r := BookResult{
			ExternalID: doc.Key,
			Title:      doc.Title,
			Authors:    doc.AuthorName,
			Pages:      doc.NumberOfPages,
		}
		if r.Authors == nil {
			r.Authors = []string{}
		}
		if doc.CoverI != 0 {
			r.CoverURL = fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-M.jpg", doc.CoverI)
		}
		results = append(results, r)
	}
	return results, nil
}
