// internal/display/palette.go
package display

import (
	"github.com/javajoker/subscription-index/internal/models"
)

// Palette holds the brand colors for a style key, as hex strings.
type Palette struct {
	Brand string `json:"brand"`
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

var palettes = map[models.StyleKey]Palette{
	models.StyleGeneric: {Brand: "#64748B", Light: "#F1F5F9", Dark: "#1E293B"},
	models.StyleYouTube: {Brand: "#FF0000", Light: "#FEF2F2", Dark: "#450A0A"},
	models.StyleSpotify: {Brand: "#1DB954", Light: "#F0FDF4", Dark: "#052E16"},
	models.StyleApple:   {Brand: "#FA243C", Light: "#FFF1F2", Dark: "#4C0519"},
	models.StyleNetflix: {Brand: "#E50914", Light: "#FEF2F2", Dark: "#450A0A"},
	models.StyleDisney:  {Brand: "#113CCF", Light: "#EFF6FF", Dark: "#172554"},
	models.StyleOpenAI:  {Brand: "#10A37F", Light: "#ECFDF5", Dark: "#022C22"},
	models.StyleTidal:   {Brand: "#000000", Light: "#F8FAFC", Dark: "#0F172A"},
	models.StyleXbox:    {Brand: "#107C10", Light: "#F0FDF4", Dark: "#052E16"},
	models.StyleAmazon:  {Brand: "#00A8E1", Light: "#F0F9FF", Dark: "#082F49"},
}

// PaletteFor resolves a style key; unknown keys get the generic palette.
func PaletteFor(style models.StyleKey) Palette {
	if p, ok := palettes[style]; ok {
		return p
	}
	return palettes[models.StyleGeneric]
}
