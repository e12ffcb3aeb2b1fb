package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type config struct {
	separator string
	maxLength int
}

// Option configures slug generation.
type Option func(*config)

// Separator sets the separator string. Default is "-".
func Separator(sep string) Option {
	return func(c *config) {
		if sep != "" {
			c.separator = sep
		}
	}
}

// MaxLength truncates the slug to at most n runes, never ending on a
// separator. Zero or negative disables the limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// foldDiacritics strips combining marks after NFD decomposition, so
// "Café" becomes "Cafe" before slug conversion.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts an arbitrary string into a URL-safe slug: diacritics are
// folded to ASCII, letters lowercased, and every run of characters outside
// [a-z0-9] collapsed to a single separator with leading and trailing
// separators trimmed.
//
// Make is idempotent: applying it to an already valid slug returns the slug
// unchanged.
func Make(s string, opts ...Option) string {
	cfg := config{separator: "-"}
	for _, opt := range opts {
		opt(&cfg)
	}

	if folded, _, err := transform.String(foldDiacritics, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteString(cfg.separator)
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	out := b.String()
	if cfg.maxLength > 0 {
		out = truncate(out, cfg.maxLength, cfg.separator)
	}
	return out
}

func truncate(s string, max int, sep string) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(string(r[:max]), sep), sep)
}
