package backend

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Honorifics stripped from names before building a mailbox username.
var (
	namePrefixes = map[string]struct{}{
		"sr": {}, "sra": {}, "srta": {}, "dr": {}, "dra": {},
		"mr": {}, "mrs": {}, "ms": {}, "miss": {}, "mx": {}, "misc": {}, "ind": {},
	}
	nameSuffixes = map[string]struct{}{
		"jr": {}, "ii": {}, "iii": {}, "iv": {}, "v": {},
		"md": {}, "phd": {}, "dds": {}, "dvm": {},
	}
)

var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugify folds accents away and keeps only ASCII letters and spaces.
func slugify(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DeriveEmail builds a mailbox address coherent with the given full
// name: honorifics dropped, accents folded, username drawn from a set
// of realistic patterns. Falls back to the backend's generic mailbox
// generator when nothing usable remains of the name.
func DeriveEmail(rng *rand.Rand, b Backend, name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	cleaned := make([]string, 0, len(words))
	for i, w := range words {
		key := strings.Trim(strings.ToLower(w), ".,")
		if i == 0 {
			if _, ok := namePrefixes[key]; ok {
				continue
			}
		}
		if i == len(words)-1 {
			if _, ok := nameSuffixes[key]; ok {
				continue
			}
		}
		cleaned = append(cleaned, w)
	}

	parts := strings.Fields(strings.ToLower(slugify(strings.Join(cleaned, " "))))
	if len(parts) == 0 {
		return b.FreeEmail(rng)
	}

	first := parts[0]
	last := parts[len(parts)-1]
	middle := ""
	if len(parts) > 2 {
		middle = parts[1]
	}

	patterns := []string{
		first + "." + last,
		first + "_" + last,
		first + last,
		first[:1] + last,
		last + "." + first,
		first,
		fmt.Sprintf("%s%d", first, rng.Intn(90)+10),
		fmt.Sprintf("%s.%s%d", first, last, rng.Intn(90)+10),
		first[:1] + "." + last,
		first + last[:1],
		last + "_" + first,
		fmt.Sprintf("%s%d", last, rng.Intn(900)+100),
		fmt.Sprintf("%s%s%d", first, last, rng.Intn(9000)+1000),
	}
	if middle != "" {
		patterns = append(patterns, first+"."+middle+"."+last, first[:1]+middle[:1]+last)
	}

	return patterns[rng.Intn(len(patterns))] + "@" + b.EmailDomain(rng)
}
