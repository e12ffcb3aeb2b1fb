package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wishcowork/sitekit/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"Premium Virtual Office – CP!", "premium-virtual-office-cp"},
		{"Modern Coworking Space - Bandra", "modern-coworking-space-bandra"},
		{"Café & Restaurant", "cafe-restaurant"},
		{"  --- Already--Messy---  ", "already-messy"},
		{"premium-virtual-office-connaught-place", "premium-virtual-office-connaught-place"},
		{"UPPER case 123", "upper-case-123"},
		{"!!!", ""},
		{"", ""},
		{"naïve résumé", "naive-resume"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, slug.Make(tc.in), "input %q", tc.in)
	}
}

func TestMake_Idempotent(t *testing.T) {
	inputs := []string{
		"Premium Virtual Office – CP!",
		"Tech Startup Office - Sector 44",
		"already-valid-slug",
		"Ünïcode Тест 北京",
		"",
	}

	for _, in := range inputs {
		once := slug.Make(in)
		assert.Equal(t, once, slug.Make(once), "slugify must be idempotent for %q", in)
	}
}

func TestMake_Separator(t *testing.T) {
	assert.Equal(t, "document_title", slug.Make("Document Title", slug.Separator("_")))
}

func TestMake_MaxLength(t *testing.T) {
	got := slug.Make("very long article title here", slug.MaxLength(15))
	assert.Equal(t, "very-long-artic", got)
	assert.LessOrEqual(t, len(got), 15)

	// Truncation never leaves a trailing separator.
	got = slug.Make("ab cd ef", slug.MaxLength(6))
	assert.Equal(t, "ab-cd", got)
}
