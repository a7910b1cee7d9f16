package transcription

import (
	"math"
	"strings"
)

// defaultWordsPerSecond is the assumed speaking rate for backends that
// return text without timestamps.
const defaultWordsPerSecond = 2.5

// EstimateFragments breaks plain transcript text into fragments of roughly
// windowSeconds each by assuming a constant speaking rate. It is a fallback
// for backends that cannot produce timestamps; the estimated boundaries are
// good enough for analysis windows but not for subtitle alignment.
func EstimateFragments(text string, windowSeconds float64) []Fragment {
	words := strings.Fields(text)
	if len(words) == 0 || windowSeconds <= 0 {
		return nil
	}

	wordsPerWindow := int(windowSeconds * defaultWordsPerSecond)
	if wordsPerWindow < 1 {
		wordsPerWindow = 1
	}

	fragments := make([]Fragment, 0, len(words)/wordsPerWindow+1)
	for i := 0; i < len(words); i += wordsPerWindow {
		j := i + wordsPerWindow
		if j > len(words) {
			j = len(words)
		}
		fragments = append(fragments, Fragment{
			Start: roundSeconds(float64(i) / defaultWordsPerSecond),
			End:   roundSeconds(float64(j) / defaultWordsPerSecond),
			Text:  strings.Join(words[i:j], " "),
		})
	}
	return fragments
}

// roundSeconds rounds a timestamp to centiseconds, matching the precision
// the recognition backends report.
func roundSeconds(s float64) float64 {
	return math.Round(s*100) / 100
}
