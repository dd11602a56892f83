package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readmio/bookshelf-service/internal/errs"
	"github.com/readmio/bookshelf-service/internal/gateway"
	"github.com/readmio/bookshelf-service/internal/model"
	"github.com/readmio/bookshelf-service/internal/search"
	"github.com/readmio/bookshelf-service/internal/state"
	md "github.com/readmio/bookshelf-service/pkg/middleware"
	"github.com/readmio/bookshelf-service/pkg/validate"
)

type Handler struct {
	log      *zap.Logger
	library  LibraryService
	settings SettingsStore
	gw       SearchGateway
	meta     MetadataClient
	session  *search.Session
}

func New(librarySvc LibraryService, settingsStore SettingsStore, gw SearchGateway, meta MetadataClient, session *search.Session, log *zap.Logger) *Handler {
	return &Handler{
		log:      log.Named("handler"),
		library:  librarySvc,
		settings: settingsStore,
		gw:       gw,
		meta:     meta,
		session:  session,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/search", h.SearchCatalog)
	api.GET("/search/history", h.GetSearchHistory)

	api.POST("/session/search", h.SessionSearch)
	api.GET("/session/results", h.SessionResults)
	api.POST("/session/more", h.SessionMore)
	api.DELETE("/session", h.SessionClear)

	api.GET("/library", h.ListLibrary)
	api.GET("/library/favorites", h.ListFavorites)
	api.GET("/library/search", h.SearchLibrary)
	api.POST("/library", h.AddToLibrary)
	api.POST("/library/favorite", h.ToggleFavorite)
	api.PATCH("/library/:id/status", h.UpdateStatus)
	api.PATCH("/library/:id/progress", h.UpdateProgress)
	api.DELETE("/library/:externalId", h.RemoveFromLibrary)

	api.GET("/library/:id/notes", h.ListNotes)
	api.POST("/library/:id/notes", h.AddNote)
	api.PATCH("/notes/:noteId", h.UpdateNote)
	api.DELETE("/notes/:noteId", h.DeleteNote)

	api.GET("/metadata", h.LookupMetadata)

	api.GET("/settings", h.GetSettings)
	api.PUT("/settings", h.PutSettings)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func filtersFromQuery(c echo.Context) gateway.Filters {
	f := gateway.Filters{
		PrintType: c.QueryParam("printType"),
		OrderBy:   gateway.OrderBy(c.QueryParam("orderBy")),
	}
	if eb := c.QueryParam("ebooks"); eb != "" {
		f.EbooksOnly, _ = strconv.ParseBool(eb) //nolint:errcheck
	}
	return f
}

func (h *Handler) SearchCatalog(c echo.Context) error {
	ctx := c.Request().Context()

	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("q is required"))
	}
	startIndex := 0
	if si := c.QueryParam("startIndex"); si != "" {
		var err error
		if startIndex, err = strconv.Atoi(si); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("startIndex is invalid"))
		}
	}

	page, err := h.gw.Search(ctx, query, filtersFromQuery(c), startIndex)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	items, err := h.library.Annotate(ctx, page.Items)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":      items,
		"totalItems": page.TotalItems,
		"startIndex": startIndex,
	})
}

type sessionSearchRequest struct {
	Query     string `json:"query"`
	PrintType string `json:"printType"`
	Ebooks    bool   `json:"ebooks"`
	OrderBy   string `json:"orderBy"`
	Immediate bool   `json:"immediate"`
}

func (h *Handler) SessionSearch(c echo.Context) error {
	var req sessionSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	f := gateway.Filters{
		PrintType:  req.PrintType,
		EbooksOnly: req.Ebooks,
		OrderBy:    gateway.OrderBy(req.OrderBy),
	}
	if req.Immediate {
		h.session.SearchNow(req.Query, f)
	} else {
		h.session.Search(req.Query, f)
	}
	return c.JSON(http.StatusAccepted, echo.Map{"status": "accepted"})
}

func (h *Handler) SessionResults(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"state":      h.session.State().Get(),
		"nextIndex":  h.session.Offset(),
		"totalItems": h.session.TotalItems(),
	})
}

func (h *Handler) SessionMore(c echo.Context) error {
	h.session.LoadMore()
	return c.JSON(http.StatusAccepted, echo.Map{"status": "accepted"})
}

func (h *Handler) SessionClear(c echo.Context) error {
	h.session.Clear()
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListLibrary(c echo.Context) error {
	status := model.ReadingStatus(c.QueryParam("status"))
	if status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("status is required"))
	}
	entries, err := h.library.ListByStatus(c.Request().Context(), status)
	if err != nil {
		if errors.Is(err, errs.ErrBadStatus) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) ListFavorites(c echo.Context) error {
	entries, err := h.library.ListFavorites(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) SearchLibrary(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("q is required"))
	}
	entries, err := h.library.SearchLocal(c.Request().Context(), query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entries)
}

type addToLibraryRequest struct {
	Book   model.BookSummary   `json:"book"`
	Status model.ReadingStatus `json:"status" validate:"required"`
}

func (h *Handler) AddToLibrary(c echo.Context) error {
	var req addToLibraryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Book.ExternalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("book.externalId is required"))
	}
	res := h.library.AddToLibrary(c.Request().Context(), req.Book, req.Status)
	return respond(c, res, http.StatusCreated)
}

type toggleFavoriteRequest struct {
	Book     model.BookSummary `json:"book"`
	Favorite bool              `json:"favorite"`
}

func (h *Handler) ToggleFavorite(c echo.Context) error {
	var req toggleFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Book.ExternalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("book.externalId is required"))
	}
	res := h.library.ToggleFavorite(c.Request().Context(), req.Book, req.Favorite)
	return respond(c, res, http.StatusOK)
}

type updateStatusRequest struct {
	Status     model.ReadingStatus `json:"status" validate:"required"`
	StampDates *bool               `json:"stampDates"`
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("id is invalid"))
	}
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	stamp := true
	if req.StampDates != nil {
		stamp = *req.StampDates
	}
	res := h.library.UpdateReadingStatus(c.Request().Context(), id, req.Status, stamp)
	return respond(c, res, http.StatusOK)
}

type updateProgressRequest struct {
	Page int `json:"page" validate:"gte=0"`
}

func (h *Handler) UpdateProgress(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("id is invalid"))
	}
	var req updateProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	res := h.library.UpdateProgress(c.Request().Context(), id, req.Page)
	return respond(c, res, http.StatusOK)
}

func (h *Handler) RemoveFromLibrary(c echo.Context) error {
	externalID := c.Param("externalId")
	if externalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("externalId is required"))
	}
	res := h.library.RemoveFromLibrary(c.Request().Context(), externalID)
	return respond(c, res, http.StatusOK)
}

type noteRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *Handler) AddNote(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("id is invalid"))
	}
	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	res := h.library.AddNote(c.Request().Context(), id, req.Text)
	return respond(c, res, http.StatusCreated)
}

func (h *Handler) UpdateNote(c echo.Context) error {
	noteID, err := strconv.ParseInt(c.Param("noteId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("noteId is invalid"))
	}
	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	res := h.library.UpdateNote(c.Request().Context(), noteID, req.Text)
	return respond(c, res, http.StatusOK)
}

func (h *Handler) DeleteNote(c echo.Context) error {
	noteID, err := strconv.ParseInt(c.Param("noteId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("noteId is invalid"))
	}
	res := h.library.DeleteNote(c.Request().Context(), noteID)
	return respond(c, res, http.StatusOK)
}

func (h *Handler) ListNotes(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("id is invalid"))
	}
	notes, err := h.library.ListNotes(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, notes)
}

func (h *Handler) LookupMetadata(c echo.Context) error {
	isbnParam := c.QueryParam("isbn")
	if isbnParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("isbn is required"))
	}
	isbns := strings.Split(isbnParam, ",")
	res, err := h.meta.LookupISBN(c.Request().Context(), isbns)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) GetSearchHistory(c echo.Context) error {
	history, err := h.settings.SearchHistory(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, history)
}

func (h *Handler) GetSettings(c echo.Context) error {
	ctx := c.Request().Context()
	dark, err := h.settings.DarkMode(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	lang, err := h.settings.Language(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"darkMode": dark, "language": lang})
}

type putSettingsRequest struct {
	DarkMode *bool   `json:"darkMode"`
	Language *string `json:"language"`
}

func (h *Handler) PutSettings(c echo.Context) error {
	var req putSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if req.DarkMode != nil {
		if err := h.settings.SetDarkMode(ctx, *req.DarkMode); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	if req.Language != nil {
		if err := h.settings.SetLanguage(ctx, *req.Language); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// respond maps the tagged mutation result onto HTTP: Failed → 500 (404 for
// missing rows), Empty → an explicit no-op body, Success → okCode with the
// payload.
func respond[T any](c echo.Context, v state.Value[T], okCode int) error {
	switch v.Status {
	case state.StatusFailed:
		if v.Err == errs.ErrNotFound.Error() {
			return echo.NewHTTPError(http.StatusNotFound, v.Err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, v.Err)
	case state.StatusEmpty:
		return c.JSON(http.StatusOK, echo.Map{"updated": false})
	default:
		return c.JSON(okCode, v.Data)
	}
}
