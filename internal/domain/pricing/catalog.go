package pricing

import (
	"context"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// CategoryDef is the engine's read-only view of a catalog entry for a
// garment category (a neck shape). A nil CategoryDef is not an error:
// the calculators fall back to built-in defaults.
type CategoryDef struct {
	Name            string
	PriceAdjustment decimal.Decimal
	ForceSlope      bool
	// AdditionalCost overrides the slope-shoulder unit price when set.
	AdditionalCost *decimal.Decimal
}

// Lookup resolves a free-text category name against the catalog.
// Implementations return (nil, nil) on a miss.
type Lookup interface {
	ResolveCategory(ctx context.Context, name string) (*CategoryDef, error)
}

var (
	parentheticalRe = regexp.MustCompile(`\(.*?\)`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// NormalizeName canonicalizes a category name for matching: the legacy
// sara-am encoding of น้ำ is rewritten to the composed form, parenthetical
// annotations are stripped, and whitespace is collapsed.
func NormalizeName(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "นํ้า", "น้ำ")
	s = parentheticalRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// MatchCategory picks the catalog entry for a requested name, tolerating
// cosmetic variants. Precedence: exact normalized match, then the longest
// candidate contained in the request, then the longest candidate that
// contains the request. Returns nil when nothing matches.
func MatchCategory(defs []CategoryDef, requested string) *CategoryDef {
	want := NormalizeName(requested)
	if want == "" {
		return nil
	}

	type candidate struct {
		def  *CategoryDef
		norm string
	}
	candidates := make([]candidate, 0, len(defs))
	for i := range defs {
		norm := NormalizeName(defs[i].Name)
		if norm == "" {
			continue
		}
		candidates = append(candidates, candidate{def: &defs[i], norm: norm})
	}

	for _, c := range candidates {
		if c.norm == want {
			return c.def
		}
	}

	// Most specific (longest) name contained in the request wins over a
	// shorter generic one.
	var best *CategoryDef
	bestLen := 0
	for _, c := range candidates {
		if strings.Contains(want, c.norm) && len(c.norm) > bestLen {
			best = c.def
			bestLen = len(c.norm)
		}
	}
	if best != nil {
		return best
	}

	for _, c := range candidates {
		if strings.Contains(c.norm, want) && len(c.norm) > bestLen {
			best = c.def
			bestLen = len(c.norm)
		}
	}
	return best
}
