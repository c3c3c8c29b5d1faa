// This file is part of Fretinput.
//
// Fretinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Fretinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Fretinput.  If not, see <https://www.gnu.org/licenses/>.

package music_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/fretinput/curated"
	"github.com/jetsetilly/fretinput/music"
	"github.com/jetsetilly/fretinput/test"
)

// encodeWAV writes the PCM data as a 16bit WAV file.
func encodeWAV(w io.WriteSeeker, p *music.PCM) error {
	enc := wav.NewEncoder(w, p.SampleRate, 16, p.Channels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: p.Channels,
			SampleRate:  p.SampleRate,
		},
		Data:           make([]int, len(p.Data)),
		SourceBitDepth: 16,
	}
	for i, v := range p.Data {
		buf.Data[i] = int(v)
	}

	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

func TestWAV(t *testing.T) {
	p := &music.PCM{
		SampleRate: 8000,
		Channels:   2,
		Data:       make([]int16, 16000),
	}
	for i := range p.Data {
		p.Data[i] = int16(i*7 - 32000)
	}
	test.ExpectEquality(t, p.Duration(), time.Second)

	fn := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, encodeWAV(f, p))
	test.DemandSuccess(t, f.Close())

	q, err := music.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.SampleRate, p.SampleRate)
	test.ExpectEquality(t, q.Channels, p.Channels)
	test.DemandEquality(t, len(q.Data), len(p.Data))
	for i := range p.Data {
		if !test.ExpectEquality(t, q.Data[i], p.Data[i], i) {
			break
		}
	}
}

func TestBytes(t *testing.T) {
	p := &music.PCM{Data: []int16{1, -1, 0x1234}}
	test.ExpectSuccess(t, bytes.Equal(p.Bytes(), []byte{0x01, 0x00, 0xff, 0xff, 0x34, 0x12}))

	// no sample rate means no duration
	test.ExpectEquality(t, p.Duration(), 0)
}

func TestBadData(t *testing.T) {
	_, err := music.Decode(bytes.NewReader([]byte("not music")), ".ogg")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, music.UnsupportedFormat))

	_, err = music.Decode(bytes.NewReader([]byte("not music")), "wav")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, music.DecodeError))

	_, err = music.Decode(bytes.NewReader([]byte("not music")), "MP3")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, music.DecodeError))

	_, err = music.Load(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)
}
