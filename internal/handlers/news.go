package handlers

import (
	"net/http"

	"Assistant/internal/clients/news"
	"Assistant/internal/httperr"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	client *news.Client
}

func NewNewsHandler(client *news.Client) *NewsHandler {
	return &NewsHandler{client: client}
}

// Headlines godoc
// @Summary      Top news headlines
// @Tags         news
// @Produce      json
// @Param        category  query  string  false  "Category (default general)"
// @Param        country   query  string  false  "Country (default us)"
// @Success      200  {object}  map[string]any
// @Router       /news/headlines [get]
func (h *NewsHandler) Headlines(c *gin.Context) {
	payload, err := h.client.Headlines(c.Request.Context(), c.Query("category"), c.Query("country"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// Search godoc
// @Summary      Search news articles
// @Tags         news
// @Produce      json
// @Param        q       query  string  true   "Search query"
// @Param        from    query  string  false  "Earliest publish date"
// @Param        sortBy  query  string  false  "Sort order (default publishedAt)"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]string
// @Router       /news/search [get]
func (h *NewsHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		fail(c, httperr.Validation("Search query is required"))
		return
	}
	payload, err := h.client.Search(c.Request.Context(), query, c.Query("from"), c.Query("sortBy"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
