// Package listview turns a user's raw collection into the ordering shown on
// screen. Every function is pure: it copies its input, applies the search
// and type filters, then a stable sort, and never mutates the passed slice.
// Equal inputs always produce equal outputs.
package listview

import (
	"sort"
	"strings"

	"cardvault/internal/models"
)

// Sort directions.
const (
	Asc  = "asc"
	Desc = "desc"
)

// Params selects which records survive filtering and how the survivors are
// ordered. An empty Search keeps everything, an empty Type keeps all types,
// and an empty SortField falls back to the view's default ordering.
type Params struct {
	Search    string
	Type      string
	SortField string
	SortDir   string
}

// matches reports whether term is a case-insensitive substring of at least
// one of the given fields. An empty term matches everything.
func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// lessString is a case-aware string comparison: case-insensitively first,
// with the raw comparison breaking case-only differences.
func lessString(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// lessCondition orders by the fixed condition rank, Mint first. Conditions
// without a rank ("Any") sort last.
func lessCondition(a, b string) bool {
	ra, ok := models.ConditionRank[a]
	if !ok {
		ra = len(models.ConditionRank) + 1
	}
	rb, ok := models.ConditionRank[b]
	if !ok {
		rb = len(models.ConditionRank) + 1
	}
	return ra < rb
}

// orient flips a less function for descending order. Equal elements compare
// false either way, so stability is preserved.
func orient(dir string, less func(i, j int) bool) func(i, j int) bool {
	if dir == Desc {
		return func(i, j int) bool { return less(j, i) }
	}
	return less
}

// Cards filters and orders a card collection. The default ordering is
// newest first.
func Cards(cards []models.Card, p Params) []models.Card {
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if !matches(p.Search, c.Name, c.Set) {
			continue
		}
		if p.Type != "" && c.Type != p.Type {
			continue
		}
		out = append(out, c)
	}

	field, dir := p.SortField, p.SortDir
	if field == "" {
		field = "createdAt"
		if dir == "" {
			dir = Desc
		}
	}

	var less func(i, j int) bool
	switch field {
	case "price":
		less = func(i, j int) bool { return out[i].Price < out[j].Price }
	case "name":
		less = func(i, j int) bool { return lessString(out[i].Name, out[j].Name) }
	case "condition":
		less = func(i, j int) bool { return lessCondition(out[i].Condition, out[j].Condition) }
	default:
		less = func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) }
	}
	sort.SliceStable(out, orient(dir, less))
	return out
}

// Trades filters and orders trade listings. The search also scans the
// looking-for text. The default ordering is newest first.
func Trades(trades []models.Trade, p Params) []models.Trade {
	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if !matches(p.Search, t.CardName, t.Set, t.LookingFor) {
			continue
		}
		if p.Type != "" && t.Type != p.Type {
			continue
		}
		out = append(out, t)
	}

	field, dir := p.SortField, p.SortDir
	if field == "" {
		field = "createdAt"
		if dir == "" {
			dir = Desc
		}
	}

	var less func(i, j int) bool
	switch field {
	case "cardName":
		less = func(i, j int) bool { return lessString(out[i].CardName, out[j].CardName) }
	case "condition":
		less = func(i, j int) bool { return lessCondition(out[i].Condition, out[j].Condition) }
	default:
		less = func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) }
	}
	sort.SliceStable(out, orient(dir, less))
	return out
}

// WishlistItems filters and orders wishlist items. The default ordering is
// by priority, most urgent first.
func WishlistItems(items []models.WishlistItem, p Params) []models.WishlistItem {
	out := make([]models.WishlistItem, 0, len(items))
	for _, w := range items {
		if !matches(p.Search, w.Name, w.Set) {
			continue
		}
		if p.Type != "" && w.Type != p.Type {
			continue
		}
		out = append(out, w)
	}

	field, dir := p.SortField, p.SortDir
	if field == "" {
		field = "priority"
		if dir == "" {
			dir = Asc
		}
	}

	var less func(i, j int) bool
	switch field {
	case "maxPrice":
		less = func(i, j int) bool { return out[i].MaxPrice < out[j].MaxPrice }
	case "name":
		less = func(i, j int) bool { return lessString(out[i].Name, out[j].Name) }
	case "priority":
		less = func(i, j int) bool { return out[i].Priority < out[j].Priority }
	case "condition":
		less = func(i, j int) bool { return lessCondition(out[i].Condition, out[j].Condition) }
	default:
		less = func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) }
	}
	sort.SliceStable(out, orient(dir, less))
	return out
}
