package converter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

const speechSampleRate = 16000

type Audio struct{}

// ConvertToWAV transcodes any ffmpeg readable clip (ogg, mp3, webm...) into
// 16 kHz mono 16-bit WAV. Data is piped through ffmpeg, no files are written.
func (a *Audio) ConvertToWAV(ctx context.Context, data []byte) ([]byte, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("looking for `ffmpeg`: %w", err)
	}

	slog.DebugContext(ctx, "Converting audio to wav", "sizeBytes", len(data))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-hide_banner", "-loglevel", "error",
		"-i", "pipe:0",
		"-ac", "1",
		"-ar", fmt.Sprint(speechSampleRate),
		"-sample_fmt", "s16",
		"-f", "wav", "pipe:1",
	)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running `ffmpeg`: %w: %s", err, stderr.String())
	}

	return stdout.Bytes(), nil
}
