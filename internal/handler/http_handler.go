package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/bestiary-search/internal/domain"
	"github.com/weiawesome/bestiary-search/internal/service"
	"github.com/weiawesome/bestiary-search/pkg/log"
	"github.com/weiawesome/bestiary-search/pkg/response"
)

// Handler handles HTTP requests for the bestiary search service.
type Handler struct {
	searchService service.SearchService
	basePath      string
}

// NewHandler creates a new HTTP handler serving under basePath.
func NewHandler(searchService service.SearchService, basePath string) *Handler {
	return &Handler{
		searchService: searchService,
		basePath:      "/" + strings.Trim(basePath, "/"),
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group(strings.TrimSuffix(h.basePath, "/") + "/v1")
	{
		api.GET("/global_search/", h.GlobalSearch)
		api.GET("/all_types_sorting/", h.AllTypesSorting)
		api.GET("/bestiary/:id", h.GetBestiary)
	}
}

// GlobalSearch returns one page of bestiaries matching the query.
func (h *Handler) GlobalSearch(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		l.Warn().Err(err).Msg("invalid search request")
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.searchService.Search(ctx, req.ToSettings())
	if err != nil {
		l.Error().Err(err).Str(log.FieldQuery, req.Search).Msg("search failed")
		response.InternalError(c, "search failed")
		return
	}

	response.Success(c, domain.ToResponses(result))
}

// AllTypesSorting lists the supported sort types.
func (h *Handler) AllTypesSorting(c *gin.Context) {
	response.Success(c, h.searchService.SortTypes())
}

// GetBestiary returns a single published bestiary.
func (h *Handler) GetBestiary(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid bestiary id")
		return
	}

	b, err := h.searchService.GetBestiary(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrBestiaryNotFound) {
			response.NotFound(c, "bestiary not found")
			return
		}
		l.Error().Err(err).Int64(log.FieldBestiaryID, id).Msg("get bestiary failed")
		response.InternalError(c, "failed to get bestiary")
		return
	}

	response.Success(c, b.ToResponse())
}
