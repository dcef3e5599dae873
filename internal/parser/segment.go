package parser

import (
	"regexp"
	"strings"
)

// Facility blocks start at a "Kredit/Pembiayaan" heading on its own line.
var blockMarker = regexp.MustCompile(`Kredit/Pembiayaan\r?\n`)

// Collateral/guarantee sections follow the facility fields and belong to no
// record; a block ends at whichever of these appears first.
var sectionEnders = []string{"Agunan", "Penjamin", "Irrevocable"}

// minBlockLen filters header/footer noise and truncated trailing fragments.
const minBlockLen = 100

// segment splits the full report text into candidate facility blocks. The
// text before the first marker is the document header and is dropped, as is
// any fragment too short to describe a facility.
func segment(fullText string) []string {
	parts := blockMarker.Split(fullText, -1)
	if len(parts) < 2 {
		return nil
	}

	var blocks []string
	for _, part := range parts[1:] {
		end := len(part)
		for _, marker := range sectionEnders {
			if idx := strings.Index(part, marker); idx >= 0 && idx < end {
				end = idx
			}
		}
		block := part[:end]
		if len(block) <= minBlockLen {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}
