package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readmio/bookshelf-service/internal/errs"
	"github.com/readmio/bookshelf-service/internal/gateway"
	"github.com/readmio/bookshelf-service/internal/handler"
	"github.com/readmio/bookshelf-service/internal/model"
	"github.com/readmio/bookshelf-service/internal/state"
	"github.com/readmio/bookshelf-service/pkg/validate"

	service_mocks "github.com/readmio/bookshelf-service/internal/handler/mocks"
)

func TestHandler_ToggleFavorite(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok. implicit add",
			body: `{"book":{"externalId":"X","title":"Dune"},"favorite":true}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ToggleFavorite(gomock.Any(), model.BookSummary{ExternalID: "X", Title: "Dune"}, true).
					Return(state.Success(model.LibraryEntry{
						ID:             1,
						ExternalBookID: "X",
						Title:          "Dune",
						Authors:        "Frank Herbert",
						ReadingStatus:  model.StatusFavoritesOnly,
						IsFavorite:     true,
					}))
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"externalBookId":"X","title":"Dune","authors":"Frank Herbert","thumbnail":"","description":"","publisher":"","publishedDate":"","pageCount":0,"categories":"","averageRating":0,"ratingsCount":0,"readingStatus":"FAVORITES_ONLY","isFavorite":true,"currentPage":0,"dateAdded":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "ok. unfavorite absent book is a no-op",
			body: `{"book":{"externalId":"ghost"},"favorite":false}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ToggleFavorite(gomock.Any(), model.BookSummary{ExternalID: "ghost"}, false).
					Return(state.Empty[model.LibraryEntry]())
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"updated":false}`,
			},
		},
		{
			name:         "err. missing external id",
			body:         `{"book":{"title":"Dune"},"favorite":true}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"book.externalId is required"}`,
			},
		},
		{
			name: "err. internal",
			body: `{"book":{"externalId":"X"},"favorite":true}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ToggleFavorite(gomock.Any(), model.BookSummary{ExternalID: "X"}, true).
					Return(state.Fail[model.LibraryEntry]("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			tt.mockBehavior(svc)

			e := newTestRouter(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/library/favorite", bytes.NewBufferString(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListLibrary(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok. empty shelf",
			target: "/api/v1/library?status=WANT_TO_READ",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ListByStatus(gomock.Any(), model.StatusWantToRead).
					Return([]model.LibraryEntry{}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[]`,
			},
		},
		{
			name:         "err. status required",
			target:       "/api/v1/library",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"status is required"}`,
			},
		},
		{
			name:   "err. bad status",
			target: "/api/v1/library?status=SHELVED",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ListByStatus(gomock.Any(), model.ReadingStatus("SHELVED")).
					Return(nil, errs.ErrBadStatus)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid reading status"}`,
			},
		},
		{
			name:   "err. internal",
			target: "/api/v1/library?status=FINISHED",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ListByStatus(gomock.Any(), model.StatusFinished).
					Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			tt.mockBehavior(svc)

			e := newTestRouter(svc)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SearchCatalogAnnotates(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()

	svc := service_mocks.NewMockLibraryService(c)
	gw := service_mocks.NewMockSearchGateway(c)

	remote := []model.BookSummary{{ExternalID: "X", Title: "Dune"}}
	annotated := []model.BookSummary{{ExternalID: "X", Title: "Dune", InLibrary: true, IsFavorite: true}}

	gw.EXPECT().
		Search(gomock.Any(), "dune", gateway.Filters{PrintType: "books"}, 0).
		Return(gateway.Page{Items: remote, TotalItems: 1}, nil)
	svc.EXPECT().
		Annotate(gomock.Any(), remote).
		Return(annotated, nil)

	log := zap.NewExample().Named("test")
	h := handler.New(svc, nil, gw, nil, nil, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/api/v1/search", h.SearchCatalog)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=dune&printType=books", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"items":[{"externalId":"X","title":"Dune","authors":null,"inLibrary":true,"isFavorite":true}],"startIndex":0,"totalItems":1}`,
		strings.Trim(w.Body.String(), "\n"))
}

func newTestRouter(svc handler.LibraryService) *echo.Echo {
	log := zap.NewExample().Named("test")
	h := handler.New(svc, nil, nil, nil, nil, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/api/v1/library", h.ListLibrary)
	e.POST("/api/v1/library/favorite", h.ToggleFavorite)
	return e
}
