package handlers

import (
	"net/http"

	"Assistant/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary      Web search with mock fallback
// @Description  Tries the configured search provider; on any failure returns five deterministic mock results. Only an empty query is an error.
// @Tags         search
// @Produce      json
// @Param        q  query  string  true  "Search query"
// @Success      200  {object}  dto.SearchResponse
// @Failure      400  {object}  map[string]string
// @Router       /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	payload, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
