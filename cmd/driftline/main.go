package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/driftline/driftline/audio"
	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/config"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/events"
	"github.com/driftline/driftline/gameworld"
	"github.com/driftline/driftline/input"
	"github.com/driftline/driftline/physics"
	"github.com/driftline/driftline/render"
	"github.com/driftline/driftline/telemetry"
	"github.com/driftline/driftline/vehicle"
	"github.com/driftline/driftline/vmath"
)

var (
	configDirFlag = flag.String("config", ".", "Directory containing driftline.toml")
	profileFlag   = flag.Bool("profile", false, "Write a CPU profile to the working directory")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configDirFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := openLogger(cfg)

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace prints,
	// otherwise raw mode garbles it
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nDRIFTLINE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	if err := run(cfg, log, screen); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "driftline: %v\n", err)
		os.Exit(1)
	}
}

func openLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	// stdout belongs to tcell, so logs go to a file
	out, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func run(cfg *config.Config, log zerolog.Logger, screen tcell.Screen) error {
	world := engine.NewWorld()
	space := gameworld.InitializePhysics(world)

	gameworld.CreateSimpleTrack(world, 500, 12)
	gameworld.CreateWeather(world, component.WeatherClear, 0)
	gameworld.CreateTimeOfDay(world, 12, 0)
	gameworld.CreateCamera(world)

	for _, z := range []float64{40, 80, 120} {
		gameworld.CreateObstacle(world, component.ObstacleCone, vmath.Vec3{X: 3, Z: z})
		gameworld.CreateObstacle(world, component.ObstacleCone, vmath.Vec3{X: -3, Z: z})
	}

	car := component.DefaultCar()
	cfg.ApplyCar(&car)
	carEntity := vehicle.CreateCarFrom(world, car, vmath.Vec3{Y: 1}, vmath.QuatIdentity)
	log.Info().Str("car", car.Name).Uint64("entity", uint64(carEntity)).Msg("car spawned")

	gameworld.RegisterSystems(world)

	bindings := input.DefaultBindings()
	if err := cfg.ApplyKeymap(bindings); err != nil {
		log.Warn().Err(err).Msg("keymap entries ignored")
	}
	handler := input.NewHandler(screen, bindings)

	var recorder *telemetry.Recorder
	if cfg.Telemetry.Enabled {
		var err error
		recorder, err = telemetry.Open(cfg.Telemetry.Path, "Simple Track", car.Name, cfg.Telemetry.SampleEvery, log)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry disabled")
		} else {
			defer recorder.Close()
		}
	}

	player, err := audio.NewPlayer()
	if err != nil {
		log.Warn().Err(err).Msg("audio disabled")
	}
	if !cfg.Audio.Enabled {
		player = nil
	}
	audioQueue := engine.EnsureResource(world.Resources, events.NewQueue[audio.Event])

	renderer := render.NewRenderer(screen)

	frameRate := cfg.Display.FrameRate
	if frameRate <= 0 {
		frameRate = 60
	}
	frameBudget := time.Second / time.Duration(frameRate)

	log.Info().Int("frameRate", frameRate).Msg("entering game loop")

	paused := false
	pauseHeld := false
	lastGear := car.CurrentGear
	lastTick := time.Now()

	for {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTick).Seconds()
		lastTick = frameStart

		handler.Sample(world)
		if handler.QuitRequested {
			log.Info().Msg("quit requested")
			return nil
		}

		state, _ := engine.GetResource[*input.ActionState](world.Resources)
		if state != nil {
			held := state.Pressed(input.ActionPause)
			if held && !pauseHeld {
				paused = !paused
			}
			pauseHeld = held
		}

		if !paused {
			world.Update(dt)
			space.Step(dt)
			physics.SyncTransforms(world)
			recorder.Record(world, dt)

			if c, ok := world.Components.Cars.Get(carEntity); ok {
				if c.CurrentGear != lastGear {
					audioQueue.Publish(audio.Event{Kind: audio.EventPlaySound, Sound: audio.SoundGearShift})
					lastGear = c.CurrentGear
				}
				if player != nil && c.Throttle > 0 {
					player.EngineTone(c.CurrentRPM)
				}
			}
		}

		if player != nil {
			player.Process(world)
		} else {
			audioQueue.Clear()
		}

		renderer.Frame(world)

		if elapsed := time.Since(frameStart); elapsed < frameBudget {
			time.Sleep(frameBudget - elapsed)
		}
	}
}
