package handlers

import (
	"net/http"
	"strings"

	"Assistant/internal/clients/weather"
	"Assistant/internal/httperr"

	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	client *weather.Client
}

func NewWeatherHandler(client *weather.Client) *WeatherHandler {
	return &WeatherHandler{client: client}
}

// Current godoc
// @Summary      Current weather for a city
// @Tags         weather
// @Produce      json
// @Param        city     query  string  false  "City (default Mumbai)"
// @Param        country  query  string  false  "Country code (default IN)"
// @Success      200  {object}  map[string]any
// @Router       /weather [get]
func (h *WeatherHandler) Current(c *gin.Context) {
	city := c.DefaultQuery("city", "Mumbai")
	country := c.DefaultQuery("country", "IN")
	payload, err := h.client.CurrentByCity(c.Request.Context(), city, country)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// Multiple godoc
// @Summary      Current weather for several cities at once
// @Description  One element per requested city, in request order. A failed city has data null and error set.
// @Tags         weather
// @Produce      json
// @Param        cities  query  string  false  "Comma-separated city names"
// @Success      200  {array}  weather.CityWeather
// @Router       /weather/multiple [get]
func (h *WeatherHandler) Multiple(c *gin.Context) {
	cities := weather.DefaultCities
	if raw := c.Query("cities"); raw != "" {
		cities = strings.Split(raw, ",")
	}
	results, err := h.client.Multiple(c.Request.Context(), cities)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// Search godoc
// @Summary      Search cities by name (geocoding)
// @Tags         weather
// @Produce      json
// @Param        q  query  string  true  "City name"
// @Success      200  {array}  map[string]any
// @Failure      400  {object}  map[string]string
// @Router       /weather/search [get]
func (h *WeatherHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		fail(c, httperr.Validation("Search query is required"))
		return
	}
	payload, err := h.client.SearchCities(c.Request.Context(), query)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// Coordinates godoc
// @Summary      Current weather by coordinates
// @Tags         weather
// @Produce      json
// @Param        lat  query  string  true  "Latitude"
// @Param        lon  query  string  true  "Longitude"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]string
// @Router       /weather/coordinates [get]
func (h *WeatherHandler) Coordinates(c *gin.Context) {
	lat, lon := c.Query("lat"), c.Query("lon")
	if lat == "" || lon == "" {
		fail(c, httperr.Validation("Latitude and longitude are required"))
		return
	}
	payload, err := h.client.CurrentByCoords(c.Request.Context(), lat, lon)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// Forecast godoc
// @Summary      5-day forecast for a city
// @Tags         weather
// @Produce      json
// @Param        city     query  string  false  "City (default London)"
// @Param        country  query  string  false  "Country code"
// @Success      200  {object}  map[string]any
// @Router       /weather/forecast [get]
func (h *WeatherHandler) Forecast(c *gin.Context) {
	city := c.DefaultQuery("city", "London")
	country := c.Query("country")
	payload, err := h.client.Forecast(c.Request.Context(), city, country)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
