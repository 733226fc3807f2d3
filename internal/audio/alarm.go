package audio

import (
	"log"
	"os"
)

// DefaultAlarmPath is the bundled alarm sound, loaded at startup
const DefaultAlarmPath = "alarm.wav"

// alarmMIMEType is the format of the bundled asset
const alarmMIMEType = "audio/wav"

// Alarm plays the fixed one-shot alarm sound when a timer expires. Ringing
// is fire and forget: playback failures are logged, never retried, and never
// block the timer returning to idle. If the asset failed to load, Ring
// degrades to a logged no-op.
type Alarm struct {
	backend Backend
	bgm     *BGM
	player  Player
}

// NewAlarm creates an alarm bound to the BGM player it must silence first
func NewAlarm(backend Backend, bgm *BGM) *Alarm {
	return &Alarm{
		backend: backend,
		bgm:     bgm,
	}
}

// LoadAsset reads and decodes the alarm sound from the given path
func (a *Alarm) LoadAsset(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	player, err := a.backend.NewPlayer(data, alarmMIMEType)
	if err != nil {
		return err
	}

	a.player = player
	return nil
}

// Ready reports whether the alarm sound is loaded and playable
func (a *Alarm) Ready() bool {
	return a.player != nil
}

// Ring pauses and rewinds the background music, then plays the alarm sound
// from the start
func (a *Alarm) Ring() {
	if a.bgm != nil {
		a.bgm.PauseAndRewind()
	}

	if a.player == nil {
		log.Printf("Alarm sound not loaded, skipping ring")
		return
	}

	if err := a.player.Rewind(); err != nil {
		log.Printf("Failed to rewind alarm sound: %v", err)
	}
	if err := a.player.Play(); err != nil {
		log.Printf("Alarm playback rejected: %v", err)
	}
}
