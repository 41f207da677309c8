package ocr

import (
	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
)

// MatchThreshold is the maximum edit distance at which a catalog product is
// still considered a confident match for an OCR'd name.
const MatchThreshold = 4

// FindBestMatch returns the catalog product whose normalized name is closest
// (by Levenshtein distance) to the normalized input text, or nil when even the
// best candidate is further than MatchThreshold.
//
// Ties on distance are broken by the lexicographically smaller normalized
// name, so the result does not depend on catalog iteration order.
func FindBestMatch(text string, catalog []*entity.Product) *entity.Product {
	needle := Normalize(text)
	if needle == "" {
		return nil
	}

	var best *entity.Product
	bestDist := 0
	bestName := ""
	for _, p := range catalog {
		name := Normalize(p.Name)
		d := Levenshtein(needle, name)
		if best == nil || d < bestDist || (d == bestDist && name < bestName) {
			best = p
			bestDist = d
			bestName = name
		}
	}
	if best == nil || bestDist > MatchThreshold {
		return nil
	}
	return best
}
