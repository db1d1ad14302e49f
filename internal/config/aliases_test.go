package config

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliasTableCanonicalsIsCaseInsensitive(t *testing.T) {
	table := DefaultAliasTable()

	assert.Equal(t, []string{"sha", "上海"}, table.Canonicals("shanghai"))
	assert.Equal(t, []string{"sha", "上海"}, table.Canonicals("Shanghai"))
	assert.Equal(t, []string{"lax", "洛杉磯"}, table.Canonicals("LOS ANGELES"))
	assert.Nil(t, table.Canonicals("atlantis"))
}

func TestAliasTableAliasesAreSorted(t *testing.T) {
	table := DefaultAliasTable()

	keys := table.Aliases()
	require.Len(t, keys, len(table))
	assert.True(t, sort.StringsAreSorted(keys))
}

func TestStaticAliasTableHolder(t *testing.T) {
	table := AliasTable{"hkg": {"hkg", "香港"}}
	holder := NewStaticAliasTableHolder(table)

	got := holder.Get()
	assert.Equal(t, []string{"hkg", "香港"}, got.Canonicals("HKG"))
}
