package pricing

import (
	"sort"
	"strconv"
	"strings"
)

// LineIdentity is the structural key that matches an incoming line to a
// persisted one during an update. It deliberately excludes row IDs and
// every priced field: two lines with the same garment content are the same
// line, whatever they cost at the time.
type LineIdentity struct {
	ProductName    string
	FabricType     string
	CategoryName   string
	SleeveType     string
	QuantityBySize map[string]int
	AddOns         []AddOn
	IsOversize     bool
}

// Fingerprint renders the identity as a canonical string. Size and add-on
// order never affect the result.
func (id LineIdentity) Fingerprint() string {
	var b strings.Builder
	b.WriteString(id.ProductName)
	b.WriteByte('|')
	b.WriteString(id.FabricType)
	b.WriteByte('|')
	b.WriteString(NormalizeName(id.CategoryName))
	b.WriteByte('|')
	b.WriteString(id.SleeveType)
	b.WriteByte('|')

	sizes := make([]string, 0, len(id.QuantityBySize))
	for size, n := range id.QuantityBySize {
		if n == 0 {
			continue
		}
		sizes = append(sizes, size+":"+strconv.Itoa(n))
	}
	sort.Strings(sizes)
	b.WriteString(strings.Join(sizes, ","))
	b.WriteByte('|')

	addOns := make([]string, 0, len(id.AddOns))
	for _, a := range id.AddOns {
		addOns = append(addOns, string(a))
	}
	sort.Strings(addOns)
	b.WriteString(strings.Join(addOns, ","))
	b.WriteByte('|')

	b.WriteString(strconv.FormatBool(id.IsOversize))
	return b.String()
}

// Identity builds the reconciliation key for a computed line, using the
// final resolved add-on set rather than the caller's raw selection.
func (l *ComputedLine) Identity() LineIdentity {
	return LineIdentity{
		ProductName:    l.ProductName,
		FabricType:     l.FabricType,
		CategoryName:   l.CategoryName,
		SleeveType:     l.SleeveType,
		QuantityBySize: l.QuantityBySize,
		AddOns:         l.AddOns,
		IsOversize:     l.IsOversize,
	}
}
