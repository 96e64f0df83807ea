package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	netDashLength = 20
	netDashGap    = 10
	netWidth      = 4
)

// CourtObject draws the background and the dashed center net.
type CourtObject struct {
	*BaseObject

	w, h       float32
	background color.Color
	net        color.Color
}

type NewCourtObjectOptions struct {
	// W is the width of the court.
	W float32
	// H is the height of the court.
	H float32
	// Background is the fill color of the court.
	Background color.Color
	// Net is the color of the center net.
	Net color.Color
	// ZIndex is the z-index of the court.
	ZIndex int
}

func NewCourtObject(id string, opts NewCourtObjectOptions) *CourtObject {
	bg := opts.Background
	if bg == nil {
		bg = color.Black
	}
	net := opts.Net
	if net == nil {
		net = color.Gray{Y: 0x80}
	}
	return &CourtObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		w:          opts.W,
		h:          opts.H,
		background: bg,
		net:        net,
	}
}

func (o *CourtObject) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, o.w, o.h, o.background, false)
	x := o.w/2 - netWidth/2
	for y := float32(0); y < o.h; y += netDashLength + netDashGap {
		vector.DrawFilledRect(screen, x, y, netWidth, netDashLength, o.net, false)
	}
}
