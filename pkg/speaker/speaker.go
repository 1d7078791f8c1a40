// Package speaker plays synthesized announcements and stored sound files
// through the default audio output.
package speaker

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"
	"github.com/youpy/go-wav"
)

// The oto context is fixed to 44.1kHz stereo; everything else is converted
// on the way in.
const (
	outputSampleRate = 44100
	outputChannels   = 2
)

// Speaker owns the audio output context. Create one per process; oto does
// not support multiple contexts.
type Speaker struct {
	otoCtx *oto.Context
}

func New() (*Speaker, error) {
	op := &oto.NewContextOptions{
		SampleRate:   outputSampleRate,
		ChannelCount: outputChannels,
		Format:       oto.FormatSignedInt16LE,
	}
	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}
	<-ready
	return &Speaker{otoCtx: otoCtx}, nil
}

// PlayMP3 decodes and plays an mp3 payload, blocking until playback ends.
func (s *Speaker) PlayMP3(data []byte) error {
	pcm, sampleRate, channels, err := decodeMP3(data)
	if err != nil {
		return err
	}
	return s.play(pcm, sampleRate, channels)
}

// PlayFile plays a .wav or .mp3 file from disk, blocking until playback
// ends.
func (s *Speaker) PlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read sound file %q: %w", path, err)
	}

	var (
		pcm        []byte
		sampleRate int
		channels   int
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		pcm, sampleRate, channels, err = decodeWAV(data)
	case ".mp3":
		pcm, sampleRate, channels, err = decodeMP3(data)
	default:
		return fmt.Errorf("unsupported audio file %q", path)
	}
	if err != nil {
		return err
	}
	return s.play(pcm, sampleRate, channels)
}

func (s *Speaker) play(pcm []byte, sampleRate, channels int) error {
	if sampleRate != outputSampleRate || channels != outputChannels {
		pcm = convertPCM(pcm, sampleRate, channels, outputSampleRate, outputChannels)
	}
	if len(pcm) == 0 {
		return nil
	}

	player := s.otoCtx.NewPlayer(bytes.NewReader(pcm))
	defer player.Close()
	player.Play()
	for player.IsPlaying() {
		time.Sleep(100 * time.Millisecond)
	}
	return nil
}

func decodeMP3(data []byte) ([]byte, int, int, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}
	pcm, err := io.ReadAll(decoder)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode mp3 data: %w", err)
	}
	// go-mp3 always emits 16-bit stereo.
	return pcm, decoder.SampleRate(), 2, nil
}

func decodeWAV(data []byte) ([]byte, int, int, error) {
	reader := wav.NewReader(bytes.NewReader(data))
	format, err := reader.Format()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to read wav format: %w", err)
	}
	reader = wav.NewReader(bytes.NewReader(data))
	pcm, err := io.ReadAll(reader)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode wav data: %w", err)
	}
	return pcm, int(format.SampleRate), int(format.NumChannels), nil
}
