package rating

// Tier is one rating band. Floor is the lowest rating inside the band.
type Tier struct {
	Name  string
	Floor int
}

// TierTable maps ratings to tier labels. Tiers must be sorted by ascending
// floor; the first tier's floor is ignored so the table is total over all
// integers.
type TierTable struct {
	Name  string
	Tiers []Tier
}

// TierFor returns the label of the highest tier whose floor is at most rating.
func (t TierTable) TierFor(rating int) string {
	for i := len(t.Tiers) - 1; i > 0; i-- {
		if rating >= t.Tiers[i].Floor {
			return t.Tiers[i].Name
		}
	}
	return t.Tiers[0].Name
}

// Ordinal returns the zero-based position of a rating's tier.
func (t TierTable) Ordinal(rating int) int {
	for i := len(t.Tiers) - 1; i > 0; i-- {
		if rating >= t.Tiers[i].Floor {
			return i
		}
	}
	return 0
}

// ClassicTable is the five-tier ladder.
var ClassicTable = TierTable{
	Name: "classic",
	Tiers: []Tier{
		{Name: "Bronze", Floor: 0},
		{Name: "Silver", Floor: 1400},
		{Name: "Gold", Floor: 1600},
		{Name: "Platinum", Floor: 1900},
		{Name: "Diamond", Floor: 2200},
	},
}

// ExtendedTable is the six-tier ladder topped by Crown Master.
var ExtendedTable = TierTable{
	Name: "extended",
	Tiers: []Tier{
		{Name: "Bronze", Floor: 0},
		{Name: "Silver", Floor: 1300},
		{Name: "Gold", Floor: 1550},
		{Name: "Platinum", Floor: 1800},
		{Name: "Diamond", Floor: 2050},
		{Name: "Crown Master", Floor: 2300},
	},
}

// TableByName picks a tier table, defaulting to classic.
func TableByName(name string) TierTable {
	if name == "extended" {
		return ExtendedTable
	}
	return ClassicTable
}
