package telemetry

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/driftline/driftline/engine"
)

// FrameSample is one periodic snapshot of a car's state
type FrameSample struct {
	ID        uint `gorm:"primarykey"`
	SessionID uint `gorm:"index"`
	Tick      uint64
	Time      float64 // seconds since session start

	PosX float64
	PosY float64
	PosZ float64

	Speed    float64 // m/s
	RPM      float64
	Gear     int
	Steering float64
	Throttle float64
	Brake    float64
}

// Session groups the samples of one run
type Session struct {
	ID        uint `gorm:"primarykey"`
	StartedAt time.Time
	Track     string
	Car       string
}

// Recorder samples car state into SQLite every sampleEvery ticks. A nil
// Recorder is a no-op so the game loop never branches on telemetry being
// enabled.
type Recorder struct {
	db  *gorm.DB
	log zerolog.Logger

	sessionID   uint
	sampleEvery uint64
	tick        uint64
	elapsed     float64

	pending []FrameSample
}

// Open connects to the telemetry database and starts a session.
// An empty path uses an in-memory database.
func Open(path, track, car string, sampleEvery uint64, log zerolog.Logger) (*Recorder, error) {
	if path == "" {
		path = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		CreateBatchSize:        500,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Session{}, &FrameSample{}); err != nil {
		return nil, err
	}

	session := Session{StartedAt: time.Now(), Track: track, Car: car}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}

	if sampleEvery == 0 {
		sampleEvery = 1
	}
	log.Info().Str("path", path).Uint("session", session.ID).Msg("telemetry session started")

	return &Recorder{
		db:          db,
		log:         log,
		sessionID:   session.ID,
		sampleEvery: sampleEvery,
		pending:     make([]FrameSample, 0, 256),
	}, nil
}

// Record snapshots the first car if the tick falls on a sample boundary.
// Rows are buffered and flushed in batches.
func (r *Recorder) Record(w *engine.World, dt float64) {
	if r == nil {
		return
	}
	r.tick++
	r.elapsed += dt
	if r.tick%r.sampleEvery != 0 {
		return
	}

	for _, e := range w.Query().
		With(w.Components.Cars).
		With(w.Components.Transforms).
		Execute() {
		car, ok := w.Components.Cars.Get(e)
		if !ok {
			continue
		}
		tf, _ := w.Components.Transforms.Get(e)

		r.pending = append(r.pending, FrameSample{
			SessionID: r.sessionID,
			Tick:      r.tick,
			Time:      r.elapsed,
			PosX:      tf.Position.X,
			PosY:      tf.Position.Y,
			PosZ:      tf.Position.Z,
			Speed:     car.CurrentSpeed,
			RPM:       car.CurrentRPM,
			Gear:      car.CurrentGear,
			Steering:  car.CurrentSteering,
			Throttle:  car.Throttle,
			Brake:     car.Brake,
		})
		break
	}

	if len(r.pending) >= 256 {
		r.Flush()
	}
}

// Flush writes buffered samples to the database
func (r *Recorder) Flush() {
	if r == nil || len(r.pending) == 0 {
		return
	}
	if err := r.db.Create(&r.pending).Error; err != nil {
		r.log.Error().Err(err).Int("rows", len(r.pending)).Msg("telemetry flush failed")
	}
	r.pending = r.pending[:0]
}

// Close flushes remaining samples and closes the connection
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	r.Flush()
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SampleCount reports rows stored for the current session
func (r *Recorder) SampleCount() (int64, error) {
	if r == nil {
		return 0, nil
	}
	var n int64
	err := r.db.Model(&FrameSample{}).Where("session_id = ?", r.sessionID).Count(&n).Error
	return n, err
}
