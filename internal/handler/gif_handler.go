package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kudosboard/kudos-board/internal/common"
	"github.com/kudosboard/kudos-board/internal/giphy"
	"github.com/kudosboard/kudos-board/pkg/cache"
	"github.com/kudosboard/kudos-board/pkg/ginutil"
	"github.com/kudosboard/kudos-board/pkg/logger"
)

const maxGifLimit = 50

// GifHandler proxies GIPHY so the API key stays on the server.
type GifHandler struct {
	client       *giphy.Client
	cache        cache.Service
	defaultLimit int
}

func NewGifHandler(client *giphy.Client, cacheSvc cache.Service, defaultLimit int) *GifHandler {
	if cacheSvc == nil {
		cacheSvc = cache.NewService(nil)
	}
	if defaultLimit <= 0 {
		defaultLimit = giphy.DefaultLimit
	}
	return &GifHandler{client: client, cache: cacheSvc, defaultLimit: defaultLimit}
}

// Trending handles GET /api/gifs/trending
// @Summary Trending GIFs
// @Description Falls back to a fixed palette when GIPHY is unavailable
// @Tags gifs
// @Produce json
// @Param limit query int false "Max results" default(12)
// @Success 200 {array} giphy.GIF
// @Router /api/gifs/trending [get]
func (h *GifHandler) Trending(c *gin.Context) {
	limit := ginutil.QueryIntRange(c, "limit", h.defaultLimit, 1, maxGifLimit)
	h.respond(c, "", limit, func() []giphy.GIF {
		return h.client.Trending(c.Request.Context(), limit)
	})
}

// Search handles GET /api/gifs/search
// @Summary Search GIFs
// @Tags gifs
// @Produce json
// @Param q query string true "Search terms"
// @Param limit query int false "Max results" default(12)
// @Success 200 {array} giphy.GIF
// @Router /api/gifs/search [get]
func (h *GifHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		common.SuccessResponse(c, []giphy.GIF{})
		return
	}
	limit := ginutil.QueryIntRange(c, "limit", h.defaultLimit, 1, maxGifLimit)
	h.respond(c, query, limit, func() []giphy.GIF {
		return h.client.Search(c.Request.Context(), query, limit)
	})
}

func (h *GifHandler) respond(c *gin.Context, query string, limit int, fetch func() []giphy.GIF) {
	ctx := c.Request.Context()

	var cached []giphy.GIF
	if err := h.cache.GetGifs(ctx, query, limit, &cached); err == nil {
		common.SuccessResponse(c, cached)
		return
	}

	gifs := fetch()
	if h.cache.IsAvailable() && !giphy.IsFallback(gifs) {
		if err := h.cache.SetGifs(ctx, query, limit, gifs); err != nil {
			logger.GetLogger().Warn().Err(err).Msg("gif cache write failed")
		}
	}
	common.SuccessResponse(c, gifs)
}
