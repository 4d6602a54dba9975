// Package debugui renders an optional Dear ImGui overlay with engine
// diagnostics on top of the game screen.
package debugui

import (
	"fmt"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
)

const historyFrames = 120

// Overlay wraps the Ebiten-specific Dear ImGui backend and draws a single
// diagnostics window. BeginFrame and EndFrame must bracket Render each tick.
type Overlay struct {
	*ebitenbackend.EbitenBackend

	frameHistory  [historyFrames]float32
	frameIndex    int
	lastFrameTime time.Time
}

// NewOverlay creates the ImGui backend and its window.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	return &Overlay{
		EbitenBackend: backend,
		lastFrameTime: time.Now(),
	}
}

// Render builds the diagnostics window from the engine's current state. Call
// between BeginFrame and EndFrame.
func (o *Overlay) Render(t *game.Tetris) {
	now := time.Now()
	o.frameHistory[o.frameIndex] = float32(now.Sub(o.lastFrameTime).Seconds()) * 1000.0
	o.lastFrameTime = now
	o.frameIndex = (o.frameIndex + 1) % historyFrames

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 360), imgui.CondOnce)

	if !imgui.BeginV("Engine Stats", nil, 0) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Score: %d", t.Score()))
	imgui.Text(fmt.Sprintf("Game Over: %v", t.GameOver()))
	imgui.Text(fmt.Sprintf("Fading Rows: %d", len(t.FadingRows())))

	counters := t.Counters()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Gravity: %d  Fast Drop: %d", counters.Gravity, counters.FastDrop))
	imgui.Text(fmt.Sprintf("Lateral: %d  Rotate: %d  Fade: %d",
		counters.Lateral, counters.Rotate, counters.Fade))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &o.frameHistory[0], int32(historyFrames))

	if imgui.TreeNodeStr("Tick Systems") {
		stats := t.Stats()
		imgui.Text(fmt.Sprintf("Executions: %d", stats.TotalExecutions))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("TickSystems", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Name")
			imgui.TableSetupColumn("Avg (ms)")
			imgui.TableSetupColumn("Max (ms)")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()

				imgui.TableNextColumn()
				imgui.Text(sys.Name)

				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.AvgDuration.Microseconds())/1000.0))

				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.MaxDuration.Microseconds())/1000.0))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
