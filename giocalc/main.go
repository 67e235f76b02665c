package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/clipboard"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/JuanPerez-MrV/CalcBranch/internal/calc"
	"github.com/JuanPerez-MrV/CalcBranch/internal/config"
	"github.com/rs/zerolog"
)

var (
	digitColor       = color.NRGBA{90, 90, 90, 255}
	specialColor     = color.NRGBA{70, 70, 70, 255}
	opColor          = color.NRGBA{122, 90, 90, 255}
	evalColor        = color.NRGBA{160, 90, 90, 255}
	backgroundColor  = color.NRGBA{50, 50, 50, 255}
	resultColor      = color.NRGBA{255, 255, 255, 255}
	errorColor       = color.NRGBA{255, 119, 119, 255}
	resultBackground = color.NRGBA{35, 35, 35, 255}

	designWidth  = unit.Dp(270)
	designHeight = unit.Dp(400)
	controlInset = unit.Dp(6)
	cornerRadius = unit.Dp(3.5)
)

// calcUI is the user interface of the calculator.
type calcUI struct {
	session *calc.Session
	theme   *material.Theme
	log     zerolog.Logger
	buttons [6][4]*button

	cornerRadius int
	gridSpacing  int
}

func newUI(theme *material.Theme, session *calc.Session) *calcUI {
	ui := &calcUI{theme: theme, session: session, log: zerolog.Nop()}
	ui.buttons = [6][4]*button{
		{ui.special(clearCmd), ui.special(ruboutCmd), ui.special(input("(")), ui.special(input(")"))},
		{ui.special(input(calc.InputSqrt)), ui.special(input(calc.InputPi)), ui.op("^"), ui.op("/")},
		{ui.digit("7"), ui.digit("8"), ui.digit("9"), ui.op("*")},
		{ui.digit("4"), ui.digit("5"), ui.digit("6"), ui.op("-")},
		{ui.digit("1"), ui.digit("2"), ui.digit("3"), ui.op("+")},
		{ui.digit("0"), ui.digit("."), ui.special(input(calc.InputAnswer)), newButton(evalCmd, evalColor)},
	}
	return ui
}

// digit creates a digit button.
func (ui *calcUI) digit(sym string) *button {
	return newButton(input(sym), digitColor)
}

// op creates an operator button.
func (ui *calcUI) op(sym string) *button {
	return newButton(input(sym), opColor)
}

// special creates a button for anything else.
func (ui *calcUI) special(cmd command) *button {
	return newButton(cmd, specialColor)
}

// run executes cmd against the session.
func (ui *calcUI) run(cmd command) {
	if err := cmd.run(ui.session); err != nil {
		ui.log.Info().Err(err).Msg("evaluation failed")
	}
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(designWidth))
	ui.cornerRadius = gtx.Dp(cornerRadius * unit.Dp(scaleFactor))
	ui.gridSpacing = gtx.Dp(controlInset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(18, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutResult)
			}),
			layout.Flexed(72, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutButtons)
			}),
		)
	})
}

func (ui *calcUI) layoutResult(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, ui.cornerRadius)
	paint.FillShape(gtx.Ops, resultBackground, rr.Op(gtx.Ops))

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, ui.layoutResultText)
}

func (ui *calcUI) layoutResultText(gtx layout.Context) layout.Dimensions {
	// Scale font based on height.
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, ui.session.Display())
	l.Color = resultColor
	if ui.session.Fresh() && ui.session.Text() == calc.ErrorText {
		l.Color = errorColor
	}
	l.Alignment = text.End
	l.MaxLines = 1
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: ui.gridSpacing,
	}
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		if b := ui.buttons[row][col]; b != nil {
			return ui.layoutButton(gtx, b)
		}
		return layout.Dimensions{}
	})
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button) layout.Dimensions {
	if b.clicker.Clicked() {
		ui.run(b.cmd)
	}

	return b.clicker.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
		textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

		style := material.Button(ui.theme, &b.clicker, b.cmd.String())
		style.Background = b.color
		style.Inset = layout.Inset{}
		style.TextSize = textSizeSp
		style.CornerRadius = unit.Dp(float32(ui.cornerRadius) / gtx.Metric.PxPerDp)
		return style.Layout(gtx)
	})
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	// Register handler for key events.
	keys := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: keyFilter,
	}
	keys.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Queue.Events(ui) {
		switch ev := ev.(type) {
		case key.Event:
			switch {
			case isCopy(ev):
				op := clipboard.WriteOp{Text: ui.session.Display()}
				op.Add(gtx.Ops)
			case isPaste(ev):
				op := clipboard.ReadOp{Tag: ui}
				op.Add(gtx.Ops)
			default:
				if cmd, ok := keyCommand(ev); ok {
					ui.run(cmd)
				}
			}

		case key.EditEvent:
			if cmd, ok := editCommand(ev); ok {
				ui.run(cmd)
			}

		case clipboard.Event:
			ui.session.Paste(ev.Text)
		}
	}
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

func isPaste(e key.Event) bool {
	return e.Name == "V" && e.Modifiers.Contain(key.ModShortcut)
}

// button is a clickable button.
type button struct {
	cmd   command
	color color.NRGBA

	clicker widget.Clickable
}

func newButton(cmd command, color color.NRGBA) *button {
	return &button{cmd: cmd, color: color}
}

func main() {
	configFile := flag.String("config", config.DefaultPath(), "configuration file")
	flag.Parse()
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var (
		size     = app.Size(designWidth, designHeight)
		statusBg = app.StatusColor(backgroundColor)
		sysBg    = app.NavigationColor(backgroundColor)
		title    = app.Title(cfg.Window.Title)
		portrait = app.PortraitOrientation.Option()
	)
	go func() {
		w := app.NewWindow(statusBg, sysBg, size, title, portrait)
		w.Option(app.MinSize(designWidth, designHeight))

		if err := loop(w, cfg.Logger(os.Stderr)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window, log zerolog.Logger) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	var (
		session = calc.NewSession(calc.WithLogger(log))
		ui      = newUI(th, session)
		ops     op.Ops
	)
	ui.log = log

	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, backgroundColor)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}
