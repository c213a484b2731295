// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vault

import (
	"fmt"
	"strings"
)

// ReconcileTitle derives one display title from the two sources' spellings.
// Identical titles pass through. Divergent ones are reduced: strip
// non-printable characters, keep only the segment before the first colon,
// drop bracket and underscore characters, then remove every character not
// present in both. If the reductions converge the common form is returned;
// otherwise both originals are combined under a marker so the divergence
// stays visible in the vault.
func ReconcileTitle(a, b string) string {
	if a == b {
		return a
	}

	ra := reduceTitle(a)
	rb := reduceTitle(b)

	keep := commonCharacters(ra, rb)
	ra = filterCharacters(ra, keep)
	rb = filterCharacters(rb, keep)

	if ra == rb && ra != "" {
		return ra
	}
	return fmt.Sprintf("*%s + %s*", a, b)
}

// reduceTitle applies the per-title normalization steps that precede the
// character intersection.
func reduceTitle(s string) string {
	s = stripNonPrintable(s)
	if before, _, found := strings.Cut(s, ":"); found {
		s = before
	}
	for _, c := range "[](){}_" {
		s = strings.ReplaceAll(s, string(c), "")
	}
	return s
}

// stripNonPrintable keeps only printable ASCII characters.
func stripNonPrintable(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= ' ' && r <= '~' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// commonCharacters returns the set of characters present in both strings.
func commonCharacters(a, b string) map[rune]bool {
	inA := make(map[rune]bool, len(a))
	for _, r := range a {
		inA[r] = true
	}
	common := make(map[rune]bool)
	for _, r := range b {
		if inA[r] {
			common[r] = true
		}
	}
	return common
}

// filterCharacters drops every character of s not in keep.
func filterCharacters(s string, keep map[rune]bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keep[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}
