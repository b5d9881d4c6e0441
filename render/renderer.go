package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/vmath"
)

const (
	hudHeight = 4
	// world meters per terminal cell; rows are doubled because terminal
	// cells are roughly twice as tall as wide
	metersPerCol = 1.0
	metersPerRow = 2.0
)

// Renderer draws a top-down view of the world plus a HUD. It reads
// transforms and render components only; nothing here mutates the world.
type Renderer struct {
	screen    tcell.Screen
	resources *resourceTable
	width     int
	height    int

	// camera focus in world space, follows the tracked entity
	focusX float64
	focusZ float64
}

// NewRenderer creates a renderer on an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:    screen,
		resources: newResourceTable(),
		width:     w,
		height:    h,
	}
}

// Frame draws one complete frame and flushes it to the terminal
func (r *Renderer) Frame(w *engine.World) {
	r.width, r.height = r.screen.Size()
	r.screen.Clear()

	r.updateFocus(w)
	r.drawEntities(w)
	r.drawHUD(w)

	r.screen.Show()
}

// updateFocus centers the viewport on the first car, falling back to the
// last focus so the view does not jump when the car despawns
func (r *Renderer) updateFocus(w *engine.World) {
	for _, e := range w.Query().
		With(w.Components.Cars).
		With(w.Components.Transforms).
		Execute() {
		if tf, ok := w.Components.Transforms.Get(e); ok {
			r.focusX = tf.Position.X
			r.focusZ = tf.Position.Z
			return
		}
	}
}

func (r *Renderer) drawEntities(w *engine.World) {
	viewH := r.height - hudHeight
	if viewH <= 0 {
		return
	}
	for _, e := range w.Query().
		With(w.Components.Renders).
		With(w.Components.Transforms).
		Execute() {
		rc, ok := w.Components.Renders.Get(e)
		if !ok || !rc.Visible {
			continue
		}
		tf, ok := w.Components.Transforms.Get(e)
		if !ok {
			continue
		}

		col := r.width/2 + int(math.Round((tf.Position.X-r.focusX)/metersPerCol))
		row := viewH/2 - int(math.Round((tf.Position.Z-r.focusZ)/metersPerRow))
		if col < 0 || col >= r.width || row < 0 || row >= viewH {
			continue
		}

		glyph, style := r.resources.lookup(rc.MeshID, rc.MaterialID, vmath.QuatYaw(tf.Rotation))
		r.screen.SetContent(col, row, glyph, nil, style)
	}
}

func (r *Renderer) drawHUD(w *engine.World) {
	base := r.height - hudHeight
	if base < 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	r.drawText(0, base, style, repeatRune('-', r.width))

	for _, e := range w.Query().With(w.Components.Cars).Execute() {
		car, ok := w.Components.Cars.Get(e)
		if !ok {
			continue
		}
		kmh := car.CurrentSpeed * 3.6
		r.drawText(1, base+1, style,
			fmt.Sprintf("%s  %5.1f km/h  gear %d  %4.0f rpm",
				car.Name, kmh, car.CurrentGear+1, car.CurrentRPM))
		r.drawText(1, base+2, style, steeringBar(car.CurrentSteering, car.MaxSteeringAngle))
		r.drawText(1, base+3, style,
			fmt.Sprintf("thr %s  brk %s", meter(car.Throttle, 10), meter(car.Brake, 10)))
		break
	}

	r.drawText(r.width-22, base+1, style, environmentLine(w))
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		if x+i >= r.width {
			return
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func environmentLine(w *engine.World) string {
	var parts string
	for _, e := range w.Query().With(w.Components.DayCycles).Execute() {
		if tod, ok := w.Components.DayCycles.Get(e); ok {
			parts = fmt.Sprintf("%02d:%02d", int(tod.Hour), int(tod.Minute))
		}
		break
	}
	for _, e := range w.Query().With(w.Components.Weathers).Execute() {
		if wc, ok := w.Components.Weathers.Get(e); ok {
			parts += " " + weatherName(wc.Kind)
		}
		break
	}
	return parts
}

func weatherName(k component.WeatherKind) string {
	switch k {
	case component.WeatherClear:
		return "clear"
	case component.WeatherCloudy:
		return "cloudy"
	case component.WeatherRain:
		return "rain"
	case component.WeatherStorm:
		return "storm"
	case component.WeatherFog:
		return "fog"
	case component.WeatherSnow:
		return "snow"
	}
	return "?"
}

// steeringBar renders the steering angle as a marker on a fixed-width bar
func steeringBar(angle, max float64) string {
	const width = 21
	bar := []rune(repeatRune('.', width))
	bar[width/2] = '|'
	pos := width / 2
	if max > 0 {
		pos += int(math.Round(angle / max * float64(width/2)))
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 1
	}
	bar[pos] = '#'
	return "steer [" + string(bar) + "]"
}

func meter(v float64, width int) string {
	filled := int(math.Round(vmath.Clamp01(v) * float64(width)))
	return repeatRune('#', filled) + repeatRune('.', width-filled)
}

func repeatRune(ch rune, n int) string {
	if n <= 0 {
		return ""
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = ch
	}
	return string(runes)
}

// headingOctant buckets a yaw angle into one of eight directions, 0 = +X
func headingOctant(yaw float64) int {
	oct := int(math.Round(yaw/(math.Pi/4))) % 8
	if oct < 0 {
		oct += 8
	}
	return oct
}
