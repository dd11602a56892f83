// Package openlibrary is the fallback per-ISBN metadata source. Results are
// returned to the caller as-is and never merged into catalog search results.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://openlibrary.org"

type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
}

func NewClient(log *zap.Logger, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		log:     log.Named("openlibrary"),
		client:  &http.Client{Timeout: time.Minute},
		baseURL: baseURL,
	}
}

type Metadata struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	PublishDate string `json:"publish_date"`
	Publishers  []struct {
		Name string `json:"name"`
	} `json:"publishers"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
	NumberOfPages int `json:"number_of_pages"`
	Cover         struct {
		Small  string `json:"small"`
		Medium string `json:"medium"`
		Large  string `json:"large"`
	} `json:"cover"`
}

// LookupISBN fetches metadata for a set of ISBNs in one call. The response is
// keyed by bib key ("ISBN:<isbn>"); absent keys simply had no match.
func (c *Client) LookupISBN(ctx context.Context, isbns []string) (map[string]Metadata, error) {
	if len(isbns) == 0 {
		return map[string]Metadata{}, nil
	}
	keys := make([]string, len(isbns))
	for i, isbn := range isbns {
		keys[i] = "ISBN:" + isbn
	}

	q := url.Values{}
	q.Set("bibkeys", strings.Join(keys, ","))
	q.Set("jscmd", "data")
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/books?%s", c.baseURL, q.Encode()), http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("isbn lookup: status %d", resp.StatusCode)
	}

	var res map[string]Metadata
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, errors.Wrap(err, "decode isbn lookup")
	}
	c.log.Debug("lookup", zap.Int("requested", len(isbns)), zap.Int("found", len(res)))
	return res, nil
}
