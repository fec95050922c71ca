package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilebrawl/fonts"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// OutcomeTitle is the headline shown for a finished round.
func OutcomeTitle(state netconfig.MatchStateID) string {
	switch state {
	case netconfig.MatchStatePlayerWon:
		return "VICTORY"
	case netconfig.MatchStatePlayerLost:
		return "DEFEATED"
	}
	return ""
}

// GameOverStats is the summary under the headline.
type GameOverStats struct {
	Room     string
	Elapsed  float64
	PlayerHP int
	EnemyHP  int
}

func (s GameOverStats) String() string {
	return fmt.Sprintf("%s  %.1fs  king %d HP  pig %d HP", s.Room, s.Elapsed, s.PlayerHP, s.EnemyHP)
}

// GameOverUI is the overlay drawn once a round is decided.
type GameOverUI struct {
	UI *ebitenui.UI

	OnRestart  func()
	OnNextRoom func()
	OnToggleAI func() bool

	titleLabel *widget.Label
	statsLabel *widget.Label
	aiButton   *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewGameOverUI builds the overlay. fonts.LoadDefaults must have run.
func NewGameOverUI(onRestart, onNextRoom func(), onToggleAI func() bool) *GameOverUI {
	g := &GameOverUI{
		OnRestart:  onRestart,
		OnNextRoom: onNextRoom,
		OnToggleAI: onToggleAI,
	}
	g.loadFonts()
	g.buildUI()
	return g
}

func (g *GameOverUI) loadFonts() {
	g.titleFace = text.NewGoXFace(fonts.Title.Get())
	g.normalFace = text.NewGoXFace(fonts.HUD.Get())
	g.smallFace = text.NewGoXFace(fonts.Small.Get())
}

func (g *GameOverUI) buildUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 160})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	g.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &g.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	content.AddChild(g.titleLabel)

	g.statsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &g.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	content.AddChild(g.statsLabel)

	content.AddChild(g.buildButtons())
	root.AddChild(content)

	g.UI = &ebitenui.UI{Container: root}
}

func (g *GameOverUI) buildButtons() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	row.AddChild(g.button("Restart (R)", func() {
		if g.OnRestart != nil {
			g.OnRestart()
		}
	}))
	// Remote games only restart; room and AI belong to the server.
	if g.OnNextRoom != nil {
		row.AddChild(g.button("Next room", g.OnNextRoom))
	}
	if g.OnToggleAI != nil {
		g.aiButton = g.button("", func() {
			g.setAILabel(g.OnToggleAI())
		})
		row.AddChild(g.aiButton)
	}

	return row
}

func (g *GameOverUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &g.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (g *GameOverUI) setAILabel(enabled bool) {
	if g.aiButton == nil {
		return
	}
	if t := g.aiButton.Text(); t != nil {
		if enabled {
			t.Label = "Enemy AI: on"
		} else {
			t.Label = "Enemy AI: off"
		}
	}
}

// Show fills the overlay for a finished round.
func (g *GameOverUI) Show(state netconfig.MatchStateID, stats GameOverStats, aiEnabled bool) {
	g.titleLabel.Label = OutcomeTitle(state)
	g.statsLabel.Label = stats.String()
	g.setAILabel(aiEnabled)
}

func (g *GameOverUI) Update() {
	g.UI.Update()
}
