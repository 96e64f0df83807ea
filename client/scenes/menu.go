package scenes

import (
	"image/color"

	"github.com/cbodonnell/pong/client/fonts"
	"github.com/cbodonnell/pong/client/objects"
	"github.com/cbodonnell/pong/client/ui"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onStart  func(name string) error
	ui       *ebitenui.UI
	name     string
	startErr string
}

type MenuSceneOptions struct {
	// Name prefills the session name input.
	Name string
	// OnStart is called with the entered session name when the start button is pressed.
	OnStart func(name string) error
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onStart:   opts.OnStart,
		name:      opts.Name,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    180,
				Left:   200,
				Right:  200,
				Bottom: 90,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("PONG", fonts.TTFLargeFont, color.White),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	nameTextInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.TextInputOpts.MobileInputMode("text"),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
			Disabled: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.NRGBA{254, 255, 255, 255},
			Disabled:      color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			Caret:         color.NRGBA{254, 255, 255, 255},
			DisabledCaret: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(5)),
		widget.TextInputOpts.CaretOpts(
			widget.CaretOpts.Size(fontFace, 2),
		),
		widget.TextInputOpts.Placeholder("Session name (optional)"),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			s.name = args.InputText
		}),
	)
	nameTextInput.SetText(s.name)
	rootContainer.AddChild(nameTextInput)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Start", fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	rootContainer.AddChild(button)

	if s.startErr != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.startErr, fontFace, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
		s.startErr = ""
	}

	nameTextInput.Focus(true)

	startHandler := func(args interface{}) {
		if err := s.onStart(nameTextInput.GetText()); err != nil {
			log.Error("Failed to start session: %v", err)
			if actionableErr, ok := err.(*ui.ActionableError); ok {
				s.startErr = actionableErr.Message
			} else {
				s.startErr = "Failed to start. Please try again."
			}
			s.renderUI()
		}
	}
	nameTextInput.SubmitEvent.AddHandler(startHandler)
	button.ClickedEvent.AddHandler(startHandler)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
