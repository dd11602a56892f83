package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readmio/bookshelf-service/internal/gateway"
	"github.com/readmio/bookshelf-service/internal/model"
)

const DefaultBaseURL = "https://www.googleapis.com/books/v1"

type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	apiKey  string
}

var _ gateway.Gateway = (*Client)(nil)

func NewClient(log *zap.Logger, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		log:     log.Named("googlebooks"),
		client:  &http.Client{Timeout: time.Minute},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title         string   `json:"title"`
			Authors       []string `json:"authors"`
			Description   string   `json:"description"`
			Publisher     string   `json:"publisher"`
			PublishedDate string   `json:"publishedDate"`
			PageCount     int      `json:"pageCount"`
			Categories    []string `json:"categories"`
			AverageRating float64  `json:"averageRating"`
			RatingsCount  int      `json:"ratingsCount"`
			ImageLinks    struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Search(ctx context.Context, query string, f gateway.Filters, startIndex int) (gateway.Page, error) {
	term := query
	if f.PrintType != "" {
		term += "+printType:" + f.PrintType
	}
	orderBy := f.OrderBy
	if orderBy == "" {
		orderBy = gateway.OrderRelevance
	}

	q := url.Values{}
	q.Set("q", term)
	q.Set("maxResults", strconv.Itoa(gateway.PageSize))
	q.Set("startIndex", strconv.Itoa(startIndex))
	q.Set("orderBy", string(orderBy))
	if f.EbooksOnly {
		q.Set("filter", "ebooks")
	}
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/volumes?%s", c.baseURL, q.Encode()), http.NoBody)
	if err != nil {
		return gateway.Page{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return gateway.Page{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		var er errorResponse
		if json.Unmarshal(body, &er) == nil && er.Error.Message != "" {
			return gateway.Page{}, errors.Errorf("catalog search: %s", er.Error.Message)
		}
		return gateway.Page{}, errors.Errorf("catalog search: status %d", resp.StatusCode)
	}

	var vr volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return gateway.Page{}, errors.Wrap(err, "decode volumes")
	}

	items := make([]model.BookSummary, 0, len(vr.Items))
	for _, it := range vr.Items {
		vi := it.VolumeInfo
		items = append(items, model.BookSummary{
			ExternalID:    it.ID,
			Title:         vi.Title,
			Authors:       vi.Authors,
			Thumbnail:     vi.ImageLinks.Thumbnail,
			Description:   vi.Description,
			Publisher:     vi.Publisher,
			PublishedDate: vi.PublishedDate,
			PageCount:     vi.PageCount,
			Categories:    vi.Categories,
			AverageRating: vi.AverageRating,
			RatingsCount:  vi.RatingsCount,
		})
	}
	c.log.Debug("search",
		zap.String("term", term),
		zap.Int("startIndex", startIndex),
		zap.Int("returned", len(items)),
		zap.Int("totalItems", vr.TotalItems))

	return gateway.Page{Items: items, TotalItems: vr.TotalItems}, nil
}
