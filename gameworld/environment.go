package gameworld

import (
	"math"

	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/core"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/vmath"
)

// CreateWeather spawns the weather entity with an initial condition
func CreateWeather(w *engine.World, kind component.WeatherKind, intensity float64) core.Entity {
	return engine.With(w.NewEntity(), w.Components.Weathers, component.WeatherComponent{
		Kind:      kind,
		Intensity: intensity,
	}).Build()
}

// CreateTimeOfDay spawns the day-cycle entity starting at the given time
func CreateTimeOfDay(w *engine.World, hour, minute float64) core.Entity {
	tod := component.DefaultTimeOfDay()
	tod.Hour = hour
	tod.Minute = minute
	return engine.With(w.NewEntity(), w.Components.DayCycles, tod).Build()
}

// WeatherSystem advances weather transitions
type WeatherSystem struct{}

func NewWeatherSystem() *WeatherSystem { return &WeatherSystem{} }

func (s *WeatherSystem) Update(w *engine.World, dt float64) {
	for _, e := range w.Components.Weathers.All() {
		w.Components.Weathers.Mutate(e, func(weather *component.WeatherComponent) {
			if !weather.Transitioning {
				return
			}
			weather.CurrentTime += dt
			if weather.CurrentTime >= weather.TransitionTime {
				weather.Kind = weather.Target
				weather.Transitioning = false
				weather.CurrentTime = 0
			}
		})
	}
}

// BeginTransition starts a timed change toward a target condition
func BeginTransition(w *engine.World, e core.Entity, target component.WeatherKind, seconds float64) {
	w.Components.Weathers.Mutate(e, func(weather *component.WeatherComponent) {
		weather.Target = target
		weather.TransitionTime = seconds
		weather.CurrentTime = 0
		weather.Transitioning = true
	})
}

// TimeOfDaySystem integrates the day/night cycle
// Delta time is unclamped; a debugger pause jumps the clock forward
type TimeOfDaySystem struct{}

func NewTimeOfDaySystem() *TimeOfDaySystem { return &TimeOfDaySystem{} }

func (s *TimeOfDaySystem) Update(w *engine.World, dt float64) {
	for _, e := range w.Components.DayCycles.All() {
		w.Components.DayCycles.Mutate(e, func(tod *component.TimeOfDayComponent) {
			if tod.DayLength <= 0 {
				return
			}
			// 24 in-game hours per DayLength real seconds
			hoursPerSecond := 24.0 / tod.DayLength * tod.TimeScale
			tod.Minute += dt * hoursPerSecond * 60

			for tod.Minute >= 60 {
				tod.Minute -= 60
				tod.Hour++
			}
			for tod.Hour >= 24 {
				tod.Hour -= 24
			}

			// Sun arcs over the sky; moon mirrors it
			angle := (tod.Hour + tod.Minute/60) / 24 * 2 * math.Pi
			tod.SunPosition = vmath.Vec3{
				X: math.Cos(angle - math.Pi/2),
				Y: math.Sin(angle - math.Pi/2),
			}
			tod.MoonPosition = vmath.V3Neg(tod.SunPosition)
		})
	}
}
