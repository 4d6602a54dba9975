package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/render"
)

const (
	gridCols       = 10
	gridRows       = 20
	ticksPerSecond = 100
)

var keyBindings = map[ebiten.Key]game.Key{
	ebiten.KeyArrowLeft:  game.KeyLeft,
	ebiten.KeyArrowRight: game.KeyRight,
	ebiten.KeyArrowUp:    game.KeyUp,
	ebiten.KeyArrowDown:  game.KeyDown,
	ebiten.KeyEnter:      game.KeyEnter,
}

// Game adapts the engine and renderer to the ebiten run loop.
type Game struct {
	engine   *game.Tetris
	renderer *render.Renderer
	overlay  *debugui.Overlay

	pressed  []ebiten.Key
	released []ebiten.Key
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, key := range g.pressed {
		if bound, ok := keyBindings[key]; ok {
			g.engine.HandleInput(game.KeyEvent{Key: bound, Pressed: true})
		}
	}

	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	for _, key := range g.released {
		if bound, ok := keyBindings[key]; ok {
			g.engine.HandleInput(game.KeyEvent{Key: bound, Pressed: false})
		}
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
		g.overlay.Render(g.engine)
		g.overlay.EndFrame()
	}

	g.engine.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.engine)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return render.ScreenWidth, render.ScreenHeight
}

func main() {
	fontPath := flag.String("font", "assets/fonts/Pixel.ttf", "Path to the TrueType font used for all text.")
	debug := flag.Bool("debug", false, "Show the engine diagnostics overlay.")
	flag.Parse()

	fonts, err := render.LoadFonts(*fontPath)
	if err != nil {
		log.Fatalf("loading fonts: %v", err)
	}

	g := &Game{
		engine:   game.New(gridCols, gridRows, nil),
		renderer: render.NewRenderer(fonts),
	}

	if *debug {
		g.overlay = debugui.NewOverlay("Blockfall", render.ScreenWidth, render.ScreenHeight)
	} else {
		ebiten.SetWindowSize(render.ScreenWidth, render.ScreenHeight)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetTPS(ticksPerSecond)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
