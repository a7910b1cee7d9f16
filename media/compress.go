package media

import (
	"context"
	"os"
	"strconv"
	"time"

	apperrors "github.com/kbukum/audiopipe/errors"
	"github.com/kbukum/audiopipe/logger"
)

// Compress re-encodes an audio file to the configured target format
// (16 kHz mono FLAC by default) and returns the output byte size.
//
// Shrinking is a goal, not a guarantee: the caller must re-evaluate its
// plan against the returned size rather than assume the ceiling was met.
func (tc *Toolchain) Compress(ctx context.Context, inputPath, outputPath string) (int64, error) {
	start := time.Now()
	_, err := tc.run(ctx, Command{
		Binary: tc.cfg.FFmpeg,
		Args: []string{
			"-i", inputPath,
			"-ar", strconv.Itoa(tc.cfg.SampleRate),
			"-ac", strconv.Itoa(tc.cfg.Channels),
			"-c:a", tc.cfg.Codec,
			"-y",
			outputPath,
		},
		Timeout: tc.cfg.EncodeTimeout,
	})
	if err != nil {
		return 0, apperrors.CompressionFailed(err).WithDetail("path", inputPath)
	}

	fi, err := os.Stat(outputPath)
	if err != nil {
		return 0, apperrors.CompressionFailed(err).WithDetail("path", outputPath)
	}

	tc.log.Info("compressed audio", logger.Fields(
		logger.FieldSizeBytes, fi.Size(),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return fi.Size(), nil
}
