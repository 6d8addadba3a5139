package display

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds HUD styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	TitleColor    rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	Padding       int32
	LineHeight    int32
	FontSize      int32
	TitleFontSize int32
	ButtonWidth   float32
	ButtonHeight  float32
	ButtonGap     float32
}

// DefaultTheme returns the default HUD theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 10, G: 30, B: 50, A: 200},
		PanelBorder:   rl.Color{R: 200, G: 220, B: 240, A: 255},
		TitleColor:    rl.Color{R: 255, G: 230, B: 120, A: 255},
		LabelColor:    rl.LightGray,
		ValueColor:    rl.White,
		Padding:       10,
		LineHeight:    24,
		FontSize:      20,
		TitleFontSize: 48,
		ButtonWidth:   220,
		ButtonHeight:  40,
		ButtonGap:     20,
	}
}

// drawPanel draws a panel background with border.
func (t Theme) drawPanel(r rl.Rectangle) {
	rl.DrawRectangleRec(r, t.PanelBg)
	rl.DrawRectangleLinesEx(r, 1, t.PanelBorder)
}

// drawCentered draws text horizontally centered on cx.
func (t Theme) drawCentered(text string, cx, y float32, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, int32(cx)-w/2, int32(y), size, color)
}
