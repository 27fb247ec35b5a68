package sound

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// seekableBuffer implements io.WriteSeeker over an in-memory byte slice so
// the WAV encoder can seek back and patch chunk sizes on Close.
type seekableBuffer struct {
	data []byte
	pos  int
}

func (b *seekableBuffer) Write(p []byte) (int, error) {
	if end := b.pos + len(p); end > len(b.data) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:], p)
	b.pos += len(p)
	return len(p), nil
}

func (b *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(b.pos) + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative seek position %d", pos)
	}
	b.pos = int(pos)
	return pos, nil
}

// encodeWAV converts float samples in [-1, 1] to a 16-bit mono WAV blob.
func encodeWAV(samples []float64) ([]byte, error) {
	buf := &seekableBuffer{}
	enc := wav.NewEncoder(buf, SampleRate, 16, 1, 1)

	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = int(s * 32767)
	}

	if err := enc.Write(&audio.IntBuffer{
		Data:   ints,
		Format: &audio.Format{SampleRate: SampleRate, NumChannels: 1},
	}); err != nil {
		return nil, fmt.Errorf("failed to write WAV samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return buf.data, nil
}
