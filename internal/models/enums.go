package models

// Card conditions, best to worst. The ordering here is also the rank used
// when sorting a collection by condition.
const (
	ConditionMint      = "Mint"
	ConditionNearMint  = "Near Mint"
	ConditionExcellent = "Excellent"
	ConditionGood      = "Good"
	ConditionFair      = "Fair"
	ConditionPoor      = "Poor"
	// ConditionAny is accepted on wishlist items only.
	ConditionAny = "Any"
)

// Card types.
const (
	TypePokemon = "Pokemon"
	TypeYuGiOh  = "Yu-Gi-Oh"
	TypeMagic   = "Magic: The Gathering"
	TypeComic   = "Comic Book"
	TypeOther   = "Other"
)

// ConditionRank maps each condition to its sort rank (Mint first).
// "Any" deliberately has no entry; wishlist items with condition "Any"
// sort after every concrete condition.
var ConditionRank = map[string]int{
	ConditionMint:      1,
	ConditionNearMint:  2,
	ConditionExcellent: 3,
	ConditionGood:      4,
	ConditionFair:      5,
	ConditionPoor:      6,
}
