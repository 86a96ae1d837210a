// Command dspdemo builds a small additive-synthesis graph — a vibrato'd
// major chord shaped by a shared ADSR envelope, the same voicing as the
// original Rust write_test_wav demo — and renders it to a
// WAV file using wavsink.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/zaynotley/dspgraph/dsp"
	"github.com/zaynotley/dspgraph/wavsink"
)

const sampleRate = 44100

func main() {
	out := flag.String("out", "demo.wav", "output WAV path")
	seconds := flag.Float64("seconds", 2.0, "render duration in seconds")
	flag.Parse()

	b := dsp.NewBuilder(sampleRate)

	env := b.ADSR(200, 0.5, 0.1, 100, 0.5, 0.08, 100, 0.5)
	env.Trigger()

	vibrato := b.Oscillator(dsp.Sine, 4, 20)

	notes := []float32{261.6256, 329.6276, 391.9954, 493.8833} // C E G B
	mix := b.Parallel(false)
	for _, f := range notes {
		osc := b.Oscillator(dsp.Sine, f, 0)
		osc.Frequency.AddModulator(vibrato, len(notes))
		osc.Amplitude.AddModulator(env, len(notes))
		mix.Add(osc, 1)
	}

	n := int(*seconds * sampleRate)
	releaseAt := n - sampleRate/10

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("dspdemo: %v", err)
	}
	defer f.Close()

	root := &tickingRoot{mix: mix, releaseAt: releaseAt, env: env}
	w := wavsink.NewWriter(root)
	if err := w.WriteSamples(f, n); err != nil {
		log.Fatalf("dspdemo: %v", err)
	}

	log.Printf("wrote %d samples to %s", n, *out)
}

// tickingRoot fires the envelope's release at a fixed sample index,
// matching the original demo's single note-off partway through playback.
type tickingRoot struct {
	mix       *dsp.Parallel
	i         int
	releaseAt int
	env       *dsp.ADSR
	released  bool
}

func (r *tickingRoot) Tick(fanOut int) (dsp.Sample, bool) {
	if !r.released && r.i >= r.releaseAt {
		r.env.Release()
		r.released = true
	}
	r.i++
	return r.mix.Tick(fanOut)
}
