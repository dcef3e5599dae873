package parser

import (
	"strings"
	"testing"
)

// filler gives a fragment enough length to survive the noise filter.
var filler = strings.Repeat("No Rekening 1234567890 Kualitas 1 - Lancar ", 4)

func TestSegmentSplitsOnMarker(t *testing.T) {
	doc := "header text before any facility\n" +
		"Kredit/Pembiayaan\n" + filler + "\n" +
		"Kredit/Pembiayaan\n" + filler + "\n" +
		"Kredit/Pembiayaan\n" + filler + "\n"

	blocks := segment(doc)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	for i, b := range blocks {
		if strings.Contains(b, "header text") {
			t.Errorf("block %d contains document header", i)
		}
	}
}

func TestSegmentDiscardsHeaderOnly(t *testing.T) {
	if blocks := segment("just a header, no facility marker at all"); blocks != nil {
		t.Errorf("got %d blocks, want none", len(blocks))
	}
}

func TestSegmentTruncatesAtSectionMarkers(t *testing.T) {
	tests := []struct {
		name   string
		marker string
	}{
		{"collateral", "Agunan"},
		{"guarantor", "Penjamin"},
		{"lc", "Irrevocable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "header\nKredit/Pembiayaan\n" + filler +
				tt.marker + " section content that belongs to no record\n"
			blocks := segment(doc)
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(blocks))
			}
			if strings.Contains(blocks[0], tt.marker) {
				t.Errorf("block not truncated at %q", tt.marker)
			}
		})
	}
}

func TestSegmentUsesEarliestSectionMarker(t *testing.T) {
	doc := "header\nKredit/Pembiayaan\n" + filler +
		"Penjamin first\nmore text\nAgunan later\n"
	blocks := segment(doc)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if strings.Contains(blocks[0], "Penjamin") || strings.Contains(blocks[0], "more text") {
		t.Errorf("block not truncated at the earliest marker: %q", blocks[0])
	}
}

func TestSegmentDropsShortFragments(t *testing.T) {
	doc := "header\nKredit/Pembiayaan\n" + filler + "\n" +
		"Kredit/Pembiayaan\ntoo short\n"
	blocks := segment(doc)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 (short fragment not dropped)", len(blocks))
	}
}
