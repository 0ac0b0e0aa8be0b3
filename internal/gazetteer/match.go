package gazetteer

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// BestMunicipality finds the municipality whose normalized name best matches
// the query. The tie-break policy is explicit rather than "first in table
// order": exact normalized equality beats containment, containment is ranked
// by how much of the candidate the query covers, remaining ties go to the
// smaller Levenshtein distance and finally the lower table index.
func BestMunicipality(query string) (string, bool) {
	nq := normalizeKey(query)
	if len(nq) < 2 {
		return "", false
	}

	best := -1
	bestScore := 0
	bestDist := 0

	for i, m := range municipalities {
		nm := normalizeKey(m.Name)

		var score int
		switch {
		case nm == nq:
			score = 1000
		case strings.Contains(nm, nq):
			// Coverage of the candidate by the query, scaled to stay
			// below any exact match.
			score = 100 + len(nq)*100/len(nm)
		default:
			continue
		}

		dist := levenshtein.ComputeDistance(nq, nm)
		if best < 0 || score > bestScore || (score == bestScore && dist < bestDist) {
			best = i
			bestScore = score
			bestDist = dist
		}
	}

	if best < 0 {
		return "", false
	}
	return municipalities[best].Name, true
}
