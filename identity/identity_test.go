package identity

import "testing"

func TestFingerprintDeterministic(t *testing.T) {
	audio := []byte("the same recording bytes")

	first := Fingerprint(audio)
	second := Fingerprint(audio)

	if first != second {
		t.Errorf("byte-identical input must hash identically: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(first))
	}
}

func TestFingerprintContentSensitive(t *testing.T) {
	a := Fingerprint([]byte("recording a"))
	b := Fingerprint([]byte("recording b"))
	if a == b {
		t.Error("different content must produce different fingerprints")
	}
}

func TestFingerprintKnownValue(t *testing.T) {
	// sha256 of the empty input.
	if got := Fingerprint(nil); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("unexpected fingerprint for empty input: %s", got)
	}
}

func TestShort(t *testing.T) {
	fp := Fingerprint([]byte("x"))
	if got := Short(fp); got != fp[:12] {
		t.Errorf("expected 12-char prefix, got %q", got)
	}
	if got := Short("abc"); got != "abc" {
		t.Errorf("expected short input unchanged, got %q", got)
	}
}
