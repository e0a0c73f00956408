package domain

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugRune keeps ASCII letters, digits and word separators.
func slugRune(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-')
}

// Slugify turns a title such as "Pão de Queijo" into "pao-de-queijo".
// Accents are folded and any other punctuation is dropped.
func Slugify(title string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return !slugRune(r) })),
		norm.NFC,
	)
	plain, _, err := transform.String(t, title)
	if err != nil {
		plain = title
	}
	words := strings.Fields(strings.ReplaceAll(plain, "-", " "))
	return strcase.ToKebab(strings.Join(words, " "))
}
