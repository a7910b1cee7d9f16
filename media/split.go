package media

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	apperrors "github.com/kbukum/audiopipe/errors"
	"github.com/kbukum/audiopipe/logger"
)

// Split cuts a compressed audio file into sequential time-bounded chunks
// written into outDir. The returned chunks cover [0, totalDuration) with no
// gaps and no overlap, indexed in chronological order starting at 0.
//
// Any cutting failure aborts the whole split; no partial chunk set is ever
// returned.
func (tc *Toolchain) Split(ctx context.Context, inputPath, outDir string, totalDuration, chunkSeconds float64) ([]Chunk, error) {
	spans, err := chunkLayout(totalDuration, chunkSeconds)
	if err != nil {
		return nil, err
	}

	chunks := make([]Chunk, 0, len(spans))
	for i, span := range spans {
		outputPath := filepath.Join(outDir, fmt.Sprintf("chunk_%04d.%s", i, tc.cfg.Codec))

		_, err := tc.run(ctx, Command{
			Binary: tc.cfg.FFmpeg,
			Args: []string{
				"-i", inputPath,
				"-ss", formatSeconds(span.start),
				"-t", formatSeconds(span.duration),
				"-ar", strconv.Itoa(tc.cfg.SampleRate),
				"-ac", strconv.Itoa(tc.cfg.Channels),
				"-c:a", tc.cfg.Codec,
				"-y",
				outputPath,
			},
			Timeout: tc.cfg.CutTimeout,
		})
		if err != nil {
			return nil, apperrors.SplitFailed(err).WithDetail("chunk", i)
		}

		chunks = append(chunks, Chunk{
			Path:     outputPath,
			Index:    i,
			Start:    span.start,
			Duration: span.duration,
		})

		tc.log.Debug("cut chunk", logger.Fields(
			logger.FieldChunk, i,
			"start", span.start,
			logger.FieldSeconds, span.duration,
		))
	}

	tc.log.Info("split audio", logger.Fields(
		logger.FieldChunks, len(chunks),
		logger.FieldSeconds, totalDuration,
	))
	return chunks, nil
}

// span is a chunk's position on the source timeline.
type span struct {
	start    float64
	duration float64
}

// chunkLayout computes chunk boundaries covering [0, totalDuration).
// The chunk count is the minimum needed to keep every chunk at or under
// chunkSeconds; durations are evened out across chunks so the tail chunk
// is not pathologically short. The final chunk's duration absorbs the
// floating-point remainder so the spans sum to exactly totalDuration.
func chunkLayout(totalDuration, chunkSeconds float64) ([]span, error) {
	if totalDuration <= 0 {
		return nil, apperrors.InvalidAudio("audio duration is zero")
	}
	if chunkSeconds <= 0 {
		return nil, apperrors.SplitFailed(fmt.Errorf("chunk duration %v is not positive", chunkSeconds))
	}

	count := int(math.Ceil(totalDuration / chunkSeconds))
	if count < 1 {
		count = 1
	}
	even := totalDuration / float64(count)

	spans := make([]span, count)
	var elapsed float64
	for i := 0; i < count; i++ {
		duration := even
		if i == count-1 {
			duration = totalDuration - elapsed
		}
		spans[i] = span{start: elapsed, duration: duration}
		elapsed += duration
	}
	return spans, nil
}

// formatSeconds renders a duration for an ffmpeg argument.
func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 3, 64)
}
