// Command dsplive is an interactive terminal-keyboard synth: each
// mapped letter key retunes a single oscillator voice and retriggers
// its ADSR, played back in realtime through livesink (oto/v3). Raw
// keystrokes are read via internal/ioctl, mirroring the teacher
// engine's terminal_host.go input path.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/zaynotley/dspgraph/dsp"
	"github.com/zaynotley/dspgraph/internal/ioctl"
	"github.com/zaynotley/dspgraph/livesink"
)

const sampleRate = 44100

// keyNotes maps a QWERTY home/top row to a one-octave chromatic scale,
// the classic "piano keyboard" layout.
var keyNotes = map[byte]float32{
	'a': 261.63, 'w': 277.18, 's': 293.66, 'e': 311.13, 'd': 329.63,
	'f': 349.23, 't': 369.99, 'g': 392.00, 'y': 415.30, 'h': 440.00,
	'u': 466.16, 'j': 493.88, 'k': 523.25,
}

func main() {
	voice := dsp.NewOscillator(dsp.Sine, dsp.NewParameter(0), dsp.NewParameter(0), sampleRate)
	env := dsp.NewADSR(5, 1, 1.0, 80, 1, 0.6, 200, 1, sampleRate)
	voice.Amplitude.AddModulator(env, 1)

	player, err := livesink.NewPlayer(sampleRate)
	if err != nil {
		log.Fatalf("dsplive: %v", err)
	}
	player.SetRoot(voice)
	player.Start()
	defer player.Stop()

	fmt.Fprintln(os.Stderr, "dsplive: press a row of letter keys to play notes, ctrl-c to quit")

	host := ioctl.NewKeyHost(func(b byte) {
		switch {
		case b == 3: // Ctrl-C
			os.Exit(0)
		default:
			if f, ok := keyNotes[b]; ok {
				// Mutating Frequency.Value here races with oto's playback
				// goroutine pulling voice.Tick concurrently; acceptable
				// for a single float32 write in this demo, but a larger
				// host would need to serialize key events with playback.
				voice.Frequency.Value = f
				env.Trigger()
			}
		}
	})
	if err := host.Start(); err != nil {
		log.Fatalf("dsplive: %v", err)
	}
	defer host.Stop()

	select {}
}
