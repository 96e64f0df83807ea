package objects

import (
	"image/color"

	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PaddleObject draws a paddle read from the current game state on every frame.
type PaddleObject struct {
	*BaseObject

	paddle func() types.Paddle
	clr    color.Color
}

type NewPaddleObjectOptions struct {
	// Paddle returns the paddle to draw.
	Paddle func() types.Paddle
	// Color is the color of the paddle.
	Color color.Color
	// ZIndex is the z-index of the paddle.
	ZIndex int
}

func NewPaddleObject(id string, opts NewPaddleObjectOptions) *PaddleObject {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &PaddleObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		paddle: opts.Paddle,
		clr:    clr,
	}
}

func (o *PaddleObject) Draw(screen *ebiten.Image) {
	p := o.paddle()
	// Y is the paddle's center
	vector.DrawFilledRect(screen,
		float32(p.X),
		float32(p.Y-constants.PaddleHalfHeight),
		float32(constants.PaddleWidth),
		float32(2*constants.PaddleHalfHeight),
		o.clr, false)
}
