package component

import "github.com/driftline/driftline/vmath"

// WeatherKind tags the active weather condition
type WeatherKind uint8

const (
	WeatherClear WeatherKind = iota
	WeatherCloudy
	WeatherRain
	WeatherStorm
	WeatherFog
	WeatherSnow
)

// WeatherComponent tracks the active weather and any transition in progress
type WeatherComponent struct {
	Kind           WeatherKind
	Intensity      float64
	TransitionTime float64 // seconds a transition takes
	CurrentTime    float64 // elapsed transition time
	Target         WeatherKind
	Transitioning  bool
}

// TimeOfDayComponent advances a day/night cycle in game time
type TimeOfDayComponent struct {
	Hour         float64 // 0-24
	Minute       float64 // 0-60
	DayLength    float64 // real seconds per in-game day
	TimeScale    float64
	SunPosition  vmath.Vec3
	MoonPosition vmath.Vec3
}

// DefaultTimeOfDay starts the cycle at noon with a 20 minute day
func DefaultTimeOfDay() TimeOfDayComponent {
	return TimeOfDayComponent{
		Hour:         12,
		DayLength:    1200,
		TimeScale:    1,
		SunPosition:  vmath.Vec3{Y: 1},
		MoonPosition: vmath.Vec3{Y: -1},
	}
}
