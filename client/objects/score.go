package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/pong/client/fonts"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const scoreMarginTop = 60

// ScoreObject draws both scores on either side of the net.
type ScoreObject struct {
	*BaseObject

	state func() types.GameState
}

func NewScoreObject(id string, state func() types.GameState, zIndex int) *ScoreObject {
	return &ScoreObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: zIndex,
		}),
		state: state,
	}
}

func (o *ScoreObject) Draw(screen *ebiten.Image) {
	s := o.state()
	quarter := float64(screen.Bounds().Dx()) / 4
	drawCentered(screen, fmt.Sprintf("%d", s.LeftScore), quarter)
	drawCentered(screen, fmt.Sprintf("%d", s.RightScore), 3*quarter)
}

func drawCentered(screen *ebiten.Image, t string, x float64) {
	f := fonts.TTFLargeFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(bounds.Max.X>>6)/2, scoreMarginTop)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}
