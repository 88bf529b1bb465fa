package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// TileURLBuilder defines the interface that the tile facade must implement.
type TileURLBuilder interface {
	TileURL(x, y, z int) string
}

// TileResponse carries the signed tile URL
// swagger:model TileResponse
type TileResponse struct {
	URL string `json:"url"`
}

// NewTileHandler returns an HTTP handler that builds map tile URLs.
// @Summary Map tile URL
// @Description Returns the signed WMTS URL for a tile coordinate.
// @Tags util
// @Produce json
// @Param x query integer true "Tile column"
// @Param y query integer true "Tile row"
// @Param z query integer true "Zoom level"
// @Success 200 {object} handlers.TileResponse "Tile URL"
// @Failure 400 {object} handlers.ErrorResponse "Malformed tile coordinate"
// @Router /util/tile [get]
func NewTileHandler(facade TileURLBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		x, xErr := strconv.Atoi(q.Get("x"))
		y, yErr := strconv.Atoi(q.Get("y"))
		z, zErr := strconv.Atoi(q.Get("z"))
		if xErr != nil || yErr != nil || zErr != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "x, y and z are required"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TileResponse{URL: facade.TileURL(x, y, z)})
	}
}
