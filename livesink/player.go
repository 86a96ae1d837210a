// Package livesink is a realtime playback collaborator: it wraps an
// oto/v3 audio context and pulls a dsp.Generator root once per output
// sample from oto's own callback goroutine, mirroring the OtoPlayer
// pattern in the teacher engine's audio_backend_oto.go. Like wavsink,
// it is not part of the DSP core — its only contact with it is
// dsp.Generator.
package livesink

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"

	"github.com/zaynotley/dspgraph/dsp"
)

// Player drives realtime mono playback of a dsp.Generator graph.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	root   atomic.Pointer[dsp.Generator]

	mutex   sync.Mutex
	started bool
}

// NewPlayer opens an oto context at sampleRate, 32-bit float mono
// samples. The returned Player has no root attached yet; call SetRoot
// before Start.
func NewPlayer(sampleRate int) (*Player, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0, // let oto pick a sensible default latency
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready

	p := &Player{ctx: ctx}
	p.player = ctx.NewPlayer(p)
	return p, nil
}

// SetRoot atomically swaps the graph root this player pulls from. It is
// safe to call while playback is running; the new root takes effect on
// the next sample.
func (p *Player) SetRoot(root dsp.Generator) {
	p.root.Store(&root)
}

// Start begins playback.
func (p *Player) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.started {
		return
	}
	p.player.Play()
	p.started = true
}

// Stop pauses playback. The underlying oto player is not closed; a
// later Start resumes it.
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.started {
		return
	}
	p.player.Pause()
	p.started = false
}

// Read implements io.Reader for oto's player: it pulls one sample per
// 4-byte float32 slot, fan-out 1 since this sink is the sole consumer
// of the root. An absent root or an absent generator output is silence.
func (p *Player) Read(buf []byte) (int, error) {
	rootPtr := p.root.Load()
	if rootPtr == nil {
		for i := range buf {
			buf[i] = 0
		}
		return len(buf), nil
	}
	root := *rootPtr

	n := len(buf) / 4
	for i := 0; i < n; i++ {
		s, ok := root.Tick(1)
		if !ok {
			s = 0
		}
		putFloat32LE(buf[i*4:i*4+4], s)
	}
	return n * 4, nil
}

func putFloat32LE(dst []byte, v float32) {
	bits := math.Float32bits(v)
	dst[0] = byte(bits)
	dst[1] = byte(bits >> 8)
	dst[2] = byte(bits >> 16)
	dst[3] = byte(bits >> 24)
}
