package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/pong/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextOverlayObject dims the screen and prints a message across its center.
type TextOverlayObject struct {
	*BaseObject

	text string
}

func NewTextOverlayObject(id string, text string, zIndex int) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: zIndex,
		}),
		text: text,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 0xa0}, false)

	t := strings.ToUpper(o.text)
	f := fonts.TTFLargeFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(w)/2-float64(bounds.Max.X>>6)/2, float64(h)/2-float64(bounds.Max.Y>>6)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}
