package facades

import (
	"fmt"
)

// TileFacade builds WMTS tile URLs for the Tianditu map service. The
// upstream is a templated URL, so no request is made here; clients fetch
// the tile themselves.
type TileFacade struct {
	apiKey  string
	baseURL string
}

func NewTileFacade(apiKey, baseURL string) *TileFacade {
	if baseURL == "" {
		baseURL = "http://t0.tianditu.gov.cn/vec_c/wmts"
	}
	return &TileFacade{apiKey: apiKey, baseURL: baseURL}
}

// TileURL returns the signed WMTS GetTile URL for a tile coordinate.
func (f *TileFacade) TileURL(x, y, z int) string {
	return fmt.Sprintf(
		"%s?SERVICE=WMTS&REQUEST=GetTile&VERSION=1.0.0&LAYER=img&STYLE=default&TILEMATRIXSET=w&FORMAT=tiles&TILEMATRIX=%d&TILEROW=%d&TILECOL=%d&tk=%s",
		f.baseURL, z, y, x, f.apiKey,
	)
}
