package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassicTableBoundaries(t *testing.T) {
	cases := []struct {
		rating int
		tier   string
	}{
		{-100, "Bronze"},
		{0, "Bronze"},
		{1200, "Bronze"},
		{1399, "Bronze"},
		{1400, "Silver"},
		{1599, "Silver"},
		{1600, "Gold"},
		{1650, "Gold"},
		{1899, "Gold"},
		{1900, "Platinum"},
		{2199, "Platinum"},
		{2200, "Diamond"},
		{2250, "Diamond"},
		{3000, "Diamond"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.tier, ClassicTable.TierFor(tc.rating), "rating %d", tc.rating)
	}
}

func TestExtendedTableBoundaries(t *testing.T) {
	cases := []struct {
		rating int
		tier   string
	}{
		{0, "Bronze"},
		{1299, "Bronze"},
		{1300, "Silver"},
		{1549, "Silver"},
		{1550, "Gold"},
		{1799, "Gold"},
		{1800, "Platinum"},
		{2049, "Platinum"},
		{2050, "Diamond"},
		{2299, "Diamond"},
		{2300, "Crown Master"},
		{3000, "Crown Master"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.tier, ExtendedTable.TierFor(tc.rating), "rating %d", tc.rating)
	}
}

func TestTierMonotonicity(t *testing.T) {
	for _, table := range []TierTable{ClassicTable, ExtendedTable} {
		prev := table.Ordinal(-200)
		for r := -199; r <= 3200; r++ {
			cur := table.Ordinal(r)
			assert.GreaterOrEqual(t, cur, prev, "table %s not monotonic at rating %d", table.Name, r)
			prev = cur
		}
	}
}

func TestTableByName(t *testing.T) {
	assert.Equal(t, "classic", TableByName("classic").Name)
	assert.Equal(t, "extended", TableByName("extended").Name)
	assert.Equal(t, "classic", TableByName("").Name)
}
