package extractor

import (
	"strings"
	"testing"
)

func TestIsReadableText(t *testing.T) {
	good := []string{strings.Repeat("Kredit/Pembiayaan Baki Debet Rp 1.000,00 Kualitas 1 - Lancar ", 3)}
	if !isReadableText(good) {
		t.Error("readable SLIK text rejected")
	}

	// Identity-encoded fonts decode into high-codepoint garbage.
	garbage := []string{strings.Repeat("�ȴ顶䌡", 50)}
	if isReadableText(garbage) {
		t.Error("garbage text accepted")
	}

	// Readable English without any SLIK vocabulary is still a mis-read.
	unrelated := []string{strings.Repeat("the quick brown fox jumps over the lazy dog ", 5)}
	if isReadableText(unrelated) {
		t.Error("text without SLIK vocabulary accepted")
	}

	if isReadableText([]string{"Kredit"}) {
		t.Error("too-short text accepted")
	}
}

func TestTextQuality(t *testing.T) {
	if q := textQuality([]string{"Plafon Awal Rp 10.000.000,00"}); q <= 0.9 {
		t.Errorf("clean text quality %f, want > 0.9", q)
	}
	if q := textQuality([]string{""}); q != 0 {
		t.Errorf("empty text quality %f, want 0", q)
	}
}
