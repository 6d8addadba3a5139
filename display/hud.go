package display

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cruise/economy"
	"github.com/pthm-cable/cruise/ui"
)

// Press is what the player clicked in the HUD this frame.
type Press struct {
	Action  economy.Action // Empty if no action button was pressed
	Start   bool
	HowTo   bool
	Back    bool
	Pressed bool
}

// HUD renders the screens, the status readout and the action bar.
type HUD struct {
	theme Theme
}

// NewHUD creates a HUD with the default theme.
func NewHUD() *HUD {
	return &HUD{theme: DefaultTheme()}
}

// readoutRect is the status panel in the top-left corner.
func (h *HUD) readoutRect() rl.Rectangle {
	t := h.theme
	return rl.Rectangle{
		X:      float32(t.Padding),
		Y:      float32(t.Padding),
		Width:  240,
		Height: float32(4*t.LineHeight + 2*t.Padding),
	}
}

// buttonRects lays the action bar out along the bottom edge.
func (h *HUD) buttonRects(n int, height float32) []rl.Rectangle {
	t := h.theme
	rects := make([]rl.Rectangle, n)
	y := height - t.ButtonHeight - t.ButtonGap
	for i := range rects {
		rects[i] = rl.Rectangle{
			X:      t.ButtonGap + float32(i)*(t.ButtonWidth+t.ButtonGap),
			Y:      y,
			Width:  t.ButtonWidth,
			Height: t.ButtonHeight,
		}
	}
	return rects
}

// Contains reports whether a point on the game screen hits a HUD element.
func (h *HUD) Contains(p rl.Vector2, height float32) bool {
	if rl.CheckCollisionPointRec(p, h.readoutRect()) {
		return true
	}
	for _, r := range h.buttonRects(len(economy.Actions), height) {
		if rl.CheckCollisionPointRec(p, r) {
			return true
		}
	}
	return false
}

// Draw renders the HUD for the current screen and returns any button press.
func (h *HUD) Draw(screen ui.Screen, state *economy.State, width, height float32) Press {
	switch screen {
	case ui.ScreenStart:
		return h.drawStart(width, height)
	case ui.ScreenHowToPlay:
		return h.drawHowToPlay(width, height)
	default:
		return h.drawGame(state, height)
	}
}

func (h *HUD) drawStart(width, height float32) Press {
	t := h.theme
	cx, cy := width/2, height/2
	t.drawPanel(rl.Rectangle{X: cx - 260, Y: cy - 150, Width: 520, Height: 300})
	t.drawCentered("Cruise Tycoon", cx, cy-120, t.TitleFontSize, t.TitleColor)

	var p Press
	if gui.Button(rl.Rectangle{X: cx - t.ButtonWidth/2, Y: cy - 20, Width: t.ButtonWidth, Height: t.ButtonHeight}, "Start Game") {
		p.Start, p.Pressed = true, true
	}
	if gui.Button(rl.Rectangle{X: cx - t.ButtonWidth/2, Y: cy + 40, Width: t.ButtonWidth, Height: t.ButtonHeight}, "How to Play") {
		p.HowTo, p.Pressed = true, true
	}
	return p
}

func (h *HUD) drawHowToPlay(width, height float32) Press {
	t := h.theme
	cx := width / 2
	panelH := float32(len(ui.HowToPlay)*int(t.LineHeight)) + 160
	top := height/2 - panelH/2
	t.drawPanel(rl.Rectangle{X: cx - 360, Y: top, Width: 720, Height: panelH})
	t.drawCentered("How to Play", cx, top+20, 32, t.TitleColor)

	y := top + 70
	for _, line := range ui.HowToPlay {
		t.drawCentered(line, cx, y, t.FontSize, t.ValueColor)
		y += float32(t.LineHeight)
	}

	var p Press
	if gui.Button(rl.Rectangle{X: cx - t.ButtonWidth/2, Y: top + panelH - t.ButtonHeight - 20, Width: t.ButtonWidth, Height: t.ButtonHeight}, "Back") {
		p.Back, p.Pressed = true, true
	}
	return p
}

func (h *HUD) drawGame(state *economy.State, height float32) Press {
	t := h.theme

	// Status readout
	panel := h.readoutRect()
	t.drawPanel(panel)
	y := int32(panel.Y) + t.Padding
	for _, line := range ui.NewReadout(state.Snapshot()).Lines() {
		rl.DrawText(line, int32(panel.X)+t.Padding, y, t.FontSize, t.ValueColor)
		y += t.LineHeight
	}

	// Action bar
	var p Press
	buttons := ui.Buttons(state)
	rects := h.buttonRects(len(buttons), height)
	for i, b := range buttons {
		if !b.Enabled {
			gui.Disable()
		}
		if gui.Button(rects[i], b.Label) && b.Enabled {
			p.Action, p.Pressed = b.Action, true
		}
		gui.Enable()
	}

	rl.DrawText("Click the water to launch a ship", int32(t.ButtonGap), int32(rects[0].Y)-t.LineHeight, 16, t.LabelColor)
	return p
}
