package converter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-audio/wav"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

const flacBlockSize = 4096

// IsWAV reports whether data is a RIFF/WAVE file.
func (a *Audio) IsWAV(data []byte) bool {
	return wav.NewDecoder(bytes.NewReader(data)).IsValidFile()
}

// EncodeFLAC re-encodes a WAV clip as mono FLAC. Only the first channel is kept.
// It returns the FLAC bytes and the sample rate of the stream.
func (a *Audio) EncodeFLAC(wavData []byte) ([]byte, int, error) {
	d := wav.NewDecoder(bytes.NewReader(wavData))
	if !d.IsValidFile() {
		return nil, 0, errors.New("not a valid wav file")
	}

	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("reading pcm data: %w", err)
	}

	channels := int(d.NumChans)
	if channels == 0 {
		return nil, 0, errors.New("wav file has no channels")
	}

	samples := make([]int32, 0, len(pcm.Data)/channels)
	for i := 0; i < len(pcm.Data); i += channels {
		samples = append(samples, int32(pcm.Data[i]))
	}
	if len(samples) == 0 {
		return nil, 0, errors.New("wav file has no samples")
	}

	sampleRate := int(d.SampleRate)
	bitsPerSample := uint8(d.BitDepth)

	buf := new(bytes.Buffer)

	// MD5sum is left unset, which decoders treat as "not computed".
	info := &meta.StreamInfo{
		BlockSizeMin:  flacBlockSize,
		BlockSizeMax:  flacBlockSize,
		SampleRate:    uint32(sampleRate),
		NChannels:     1,
		BitsPerSample: bitsPerSample,
		NSamples:      uint64(len(samples)),
	}

	enc, err := flac.NewEncoder(buf, info)
	if err != nil {
		return nil, 0, fmt.Errorf("creating FLAC encoder: %w", err)
	}

	for start := 0; start < len(samples); start += flacBlockSize {
		end := min(start+flacBlockSize, len(samples))

		f := &frame.Frame{
			Header: frame.Header{
				HasFixedBlockSize: true,
				BlockSize:         uint16(end - start),
				SampleRate:        uint32(sampleRate),
				Channels:          frame.ChannelsMono,
				BitsPerSample:     bitsPerSample,
			},
			Subframes: []*frame.Subframe{{
				SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
				Samples:   samples[start:end],
				NSamples:  end - start,
			}},
		}

		if err := enc.WriteFrame(f); err != nil {
			return nil, 0, fmt.Errorf("writing FLAC frame: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return nil, 0, fmt.Errorf("closing FLAC encoder: %w", err)
	}

	return buf.Bytes(), sampleRate, nil
}
