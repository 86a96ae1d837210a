// Package wavsink is the WAV file writer collaborator described in
// spec.md §6.2. It pulls samples from a dsp.Generator root and encodes
// a canonical 44-byte RIFF/WAVE PCM file: stereo, 44.1 kHz, 16-bit,
// with the mono core output duplicated to both channels. It is not
// part of the DSP core — its only contact with it is dsp.Generator.
package wavsink

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/zaynotley/dspgraph/dsp"
)

const (
	sampleRate    = 44100
	channels      = 2
	bitsPerSample = 16
)

// Writer pulls a root generator for a fixed number of samples and
// encodes them as a stereo 16-bit PCM WAV stream.
type Writer struct {
	Root dsp.Generator
}

// NewWriter wraps root for WAV encoding.
func NewWriter(root dsp.Generator) *Writer {
	return &Writer{Root: root}
}

// WriteSamples pulls n samples from the root generator (fan-out 1, as
// the sink is the sole consumer) and writes a complete WAV file to w.
// Sample-count and duration are sink policy, not core: the caller
// decides n.
func (wr *Writer) WriteSamples(w io.Writer, n int) error {
	dataSize := uint32(n * channels * bitsPerSample / 8)

	if err := writeHeader(w, dataSize); err != nil {
		return err
	}

	buf := make([]byte, 4)
	for i := 0; i < n; i++ {
		s, ok := wr.Root.Tick(1)
		if !ok {
			s = 0
		}
		pcm := encodePCM16(s)
		binary.LittleEndian.PutUint16(buf[0:2], uint16(pcm))
		binary.LittleEndian.PutUint16(buf[2:4], uint16(pcm))
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(w io.Writer, dataSize uint32) error {
	var hdr [44]byte
	copy(hdr[0:4], "RIFF")
	binary.LittleEndian.PutUint32(hdr[4:8], 36+dataSize)
	copy(hdr[8:12], "WAVE")

	copy(hdr[12:16], "fmt ")
	binary.LittleEndian.PutUint32(hdr[16:20], 16)
	binary.LittleEndian.PutUint16(hdr[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(hdr[22:24], channels)
	binary.LittleEndian.PutUint32(hdr[24:28], sampleRate)
	byteRate := sampleRate * channels * bitsPerSample / 8
	binary.LittleEndian.PutUint32(hdr[28:32], uint32(byteRate))
	blockAlign := channels * bitsPerSample / 8
	binary.LittleEndian.PutUint16(hdr[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(hdr[34:36], bitsPerSample)

	copy(hdr[36:40], "data")
	binary.LittleEndian.PutUint32(hdr[40:44], dataSize)

	_, err := w.Write(hdr[:])
	return err
}

// encodePCM16 applies the asymmetric scale from spec.md §6.2: positive
// samples are scaled by half the positive int16 range, negative samples
// by half the (larger in magnitude) negative int16 range, so a
// full-scale sample maps to about half the rail: 1.0 to 16383 and -1.0
// to -16384.
func encodePCM16(s dsp.Sample) int16 {
	v := float64(s)
	if v >= 0 {
		return int16(v * math.MaxInt16 * 0.5)
	}
	return int16(v * -math.MinInt16 * 0.5)
}
