package gateway

import (
	"context"

	"github.com/readmio/bookshelf-service/internal/model"
)

const PageSize = 20

type OrderBy string

const (
	OrderRelevance OrderBy = "relevance"
	OrderNewest    OrderBy = "newest"
)

// Filters narrows a catalog search. PrintType is embedded into the query term
// itself ("books", "magazines", or empty for all); EbooksOnly restricts to
// volumes available as ebooks.
type Filters struct {
	PrintType  string
	EbooksOnly bool
	OrderBy    OrderBy
}

type Page struct {
	Items      []model.BookSummary
	TotalItems int
}

// Gateway is one paginated fetch against a remote catalog.
type Gateway interface {
	Search(ctx context.Context, query string, f Filters, startIndex int) (Page, error)
}
