package entity

import (
	"strings"
	"time"
	"unicode"
)

// UnspecifiedCityName is the sentinel canonical name used when a request
// carries no usable location.
const UnspecifiedCityName = "sin especificar"

// City is the normalized, deduplicated representation of a free-text
// location. Cities are created lazily on first sighting and only ever
// deactivated, never deleted.
type City struct {
	ID                 int64     `json:"id"`
	Nombre             string    `json:"nombre"` // Canonical name, unique.
	Codigo             string    `json:"codigo"` // Short lookup code, unique.
	Pais               string    `json:"pais"`
	Activa             bool      `json:"activa"`
	TotalSolicitudes   int       `json:"total_solicitudes"`
	SolicitudesActivas int       `json:"solicitudes_activas"`
	CreatedAt          time.Time `json:"created_at"`
}

// NormalizeCityName derives the canonical form of a free-text city name:
// lowercase, diacritics folded to ASCII, non-alphanumerics removed and
// whitespace collapsed. It is pure so normalized names are stable cache keys.
func NormalizeCityName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return UnspecifiedCityName
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	lastSpace := false
	for _, r := range strings.ToLower(trimmed) {
		r = foldDiacritic(r)
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace && b.Len() > 0 {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}

	normalized := strings.TrimSpace(b.String())
	if normalized == "" {
		return UnspecifiedCityName
	}

	return normalized
}

// CityCode builds the short lookup code for a canonical name: the first two
// letters of the first two words, or the first three characters of a
// single-word name.
func CityCode(canonical string) string {
	if len(canonical) < 2 {
		return "XX"
	}

	words := strings.Fields(canonical)
	if len(words) >= 2 {
		return strings.ToUpper(prefix(words[0], 2) + prefix(words[1], 2))
	}

	return strings.ToUpper(prefix(canonical, 3))
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}

	return s[:n]
}

func foldDiacritic(r rune) rune {
	switch r {
	case 'á', 'à', 'ä', 'â':
		return 'a'
	case 'é', 'è', 'ë', 'ê':
		return 'e'
	case 'í', 'ì', 'ï', 'î':
		return 'i'
	case 'ó', 'ò', 'ö', 'ô':
		return 'o'
	case 'ú', 'ù', 'ü', 'û':
		return 'u'
	case 'ñ':
		return 'n'
	default:
		return r
	}
}
