package audio

// EventKind discriminates audio events
type EventKind uint8

const (
	EventPlaySound EventKind = iota
	EventStopSound
	EventSetVolume
	EventPlayMusic
	EventStopMusic
)

// Sound identifies a game sound effect
type Sound uint8

const (
	SoundGearShift Sound = iota
	SoundSkid
	SoundCollision
	SoundCheckpoint
	SoundCountdown
)

// Event is one entry in the audio event queue published by gameplay code
// and drained by the player once per frame
type Event struct {
	Kind   EventKind
	Sound  Sound
	Volume float64 // for EventSetVolume, [0,1]
}
