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

// Package music decodes music files into PCM data suitable for playback.
// Supported formats are WAV and MP3.
//
// The sdlmusic sub-package plays the decoded data and notifies the
// application when a track has finished.
package music

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/fretinput/curated"
	"github.com/jetsetilly/fretinput/logger"
)

// Sentinal errors.
const (
	UnsupportedFormat = "music: unsupported format (%s)"
	DecodeError       = "music: %s: %v"
)

// PCM is decoded audio data.
type PCM struct {
	SampleRate int
	Channels   int

	// interleaved signed 16bit samples
	Data []int16
}

// Duration returns the playing time of the PCM data.
func (p *PCM) Duration() time.Duration {
	if p.SampleRate == 0 || p.Channels == 0 {
		return 0
	}
	frames := len(p.Data) / p.Channels
	return time.Duration(frames) * time.Second / time.Duration(p.SampleRate)
}

// Bytes returns the PCM data as little endian bytes.
func (p *PCM) Bytes() []byte {
	b := make([]byte, len(p.Data)*2)
	for i, v := range p.Data {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(v))
	}
	return b
}

// Load opens and decodes the named file. The format is decided by the file
// extension.
func Load(filename string) (*PCM, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("music: %v", err)
	}
	defer f.Close()

	return Decode(f, filepath.Ext(filename))
}

// Decode the data in the reader. The ext argument is a filename extension
// (with or without the leading period) and decides the format of the data.
func Decode(r io.ReadSeeker, ext string) (*PCM, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")

	var p *PCM
	var err error

	switch ext {
	case "wav":
		p, err = decodeWAV(r)
	case "mp3":
		p, err = decodeMP3(r)
	default:
		return nil, curated.Errorf(UnsupportedFormat, ext)
	}

	if err != nil {
		return nil, curated.Errorf(DecodeError, ext, err)
	}

	logger.Logf(logger.Allow, "music", "%s: %dHz, %d channels, %v", ext, p.SampleRate, p.Channels, p.Duration())

	return p, nil
}

func decodeWAV(r io.ReadSeeker) (*PCM, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, curated.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}

	p := &PCM{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Data:       make([]int16, len(buf.Data)),
	}

	// scale samples to 16bit
	for i, v := range buf.Data {
		switch dec.BitDepth {
		case 8:
			// 8bit wav data is unsigned
			p.Data[i] = int16((v - 128) << 8)
		case 24:
			p.Data[i] = int16(v >> 8)
		case 32:
			p.Data[i] = int16(v >> 16)
		default:
			p.Data[i] = int16(v)
		}
	}

	return p, nil
}

func decodeMP3(r io.Reader) (*PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}

	// the decoded stream is always 16bit little endian with two channels
	p := &PCM{
		SampleRate: dec.SampleRate(),
		Channels:   2,
	}

	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 2 {
			p.Data = append(p.Data, int16(binary.LittleEndian.Uint16(chunk[i:])))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	if len(p.Data) == 0 {
		return nil, curated.Errorf("no audio data")
	}

	return p, nil
}
