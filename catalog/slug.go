package catalog

import (
	"regexp"
	"strings"

	"github.com/sahilchouksey/college-compass/database"
)

var (
	slugStrip  = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces = regexp.MustCompile(`\s+`)
	slugDashes = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-friendly slug from a display name: lowercase,
// punctuation stripped, whitespace runs collapsed to single hyphens.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return s
}

// slugKeys is the resolution priority for human-readable lookups.
var slugKeys = []string{"slug", "nameSlug", "name"}

// ResolveBySlugOrName finds the document matching a slug or name,
// case-insensitively, checking the explicit slug field across all
// documents first, then nameSlug, then the literal name. First match in
// priority order wins, so a document's explicit slug always beats
// another document's derived one.
func ResolveBySlugOrName(docs []database.Document, slugOrName string) (*database.Document, bool) {
	if slugOrName == "" {
		return nil, false
	}
	want := strings.ToLower(slugOrName)

	for _, key := range slugKeys {
		for i := range docs {
			v, ok := docs[i].Data[key].(string)
			if ok && strings.ToLower(v) == want {
				return &docs[i], true
			}
		}
	}
	return nil, false
}
