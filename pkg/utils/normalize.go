package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LocalAssetPrefix marks assets stored in the local inventory rather than
// the remote store.
const LocalAssetPrefix = "local-"

var assetExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// stripMarks decomposes, drops combining marks and recomposes, turning
// "Guatapé" into "Guatape".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize reduces a place or asset name to a comparable key: lowercase,
// diacritics stripped, image extension and local prefix removed, only letters
// and digits kept. The result is stable under re-normalization because the
// output never contains the dots or hyphens the trim steps look for.
func Normalize(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))

	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		stripped = lowered
	}

	for _, ext := range assetExtensions {
		if strings.HasSuffix(stripped, ext) {
			stripped = strings.TrimSuffix(stripped, ext)
			break
		}
	}
	stripped = strings.TrimPrefix(stripped, LocalAssetPrefix)

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
