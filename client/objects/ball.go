package objects

import (
	"image/color"

	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type BallObject struct {
	*BaseObject

	ball func() types.Ball
	clr  color.Color
}

func NewBallObject(id string, ball func() types.Ball, zIndex int) *BallObject {
	return &BallObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: zIndex,
		}),
		ball: ball,
		clr:  color.White,
	}
}

func (o *BallObject) Draw(screen *ebiten.Image) {
	b := o.ball()
	size := float32(2 * constants.BallHalfSize)
	vector.DrawFilledRect(screen,
		float32(b.X-constants.BallHalfSize),
		float32(b.Y-constants.BallHalfSize),
		size, size, o.clr, false)
}
