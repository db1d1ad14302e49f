package aiquote

import (
	"testing"

	"github.com/harborline/seaquote/internal/config"
	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referencePorts() []portdomain.Port {
	return []portdomain.Port{
		{ID: 1, Code: "SHA", Name: "上海", Country: "CN", Region: "Asia"},
		{ID: 2, Code: "KHH", Name: "高雄", Country: "TW", Region: "Asia"},
		{ID: 3, Code: "LAX", Name: "洛杉磯", Country: "US", Region: "America"},
		{ID: 4, Code: "RTM", Name: "鹿特丹", Country: "NL", Region: "Europe"},
	}
}

func referenceContainerTypes() []containertypedomain.ContainerType {
	return []containertypedomain.ContainerType{
		{ID: 1, Code: "20GP", Name: "20呎標準貨櫃", Size: "20GP"},
		{ID: 2, Code: "40GP", Name: "40呎標準貨櫃", Size: "40GP"},
		{ID: 3, Code: "40HQ", Name: "40呎高櫃", Size: "40HQ"},
	}
}

func extract(t *testing.T, query string) Extraction {
	t.Helper()
	aliases := config.DefaultAliasTable()
	normalized := Normalize(query, aliases)
	return Extract(normalized, referencePorts(), referenceContainerTypes(), aliases)
}

func TestExtractChineseQuery(t *testing.T) {
	ex := extract(t, "請提供從上海到洛杉磯的40HQ運費")

	require.True(t, ex.Complete())
	assert.Equal(t, "SHA", ex.Origin.Code)
	assert.Equal(t, "LAX", ex.Destination.Code)
	assert.Equal(t, "40HQ", ex.ContainerType.Code)
}

func TestExtractEnglishQueryViaAliases(t *testing.T) {
	ex := extract(t, "rate from shanghai to los angeles 40hq")

	require.True(t, ex.Complete())
	assert.Equal(t, "SHA", ex.Origin.Code)
	assert.Equal(t, "LAX", ex.Destination.Code)
	assert.Equal(t, "40HQ", ex.ContainerType.Code)
}

func TestExtractAlternativeCues(t *testing.T) {
	ex := extract(t, "自高雄至鹿特丹的20GP")

	require.True(t, ex.Complete())
	assert.Equal(t, "KHH", ex.Origin.Code)
	assert.Equal(t, "RTM", ex.Destination.Code)
	assert.Equal(t, "20GP", ex.ContainerType.Code)
}

func TestExtractCueOrderDoesNotMatter(t *testing.T) {
	ex := extract(t, "到洛杉磯 從上海 40hq")

	require.True(t, ex.Complete())
	assert.Equal(t, "SHA", ex.Origin.Code)
	assert.Equal(t, "LAX", ex.Destination.Code)
}

func TestExtractCompetingCuedOriginsFollowReferenceOrder(t *testing.T) {
	// 高雄 (KHH) is cued first in the text but 上海 (SHA) sits earlier in
	// the reference list, so the later-scanned KHH keeps the origin slot.
	ex := extract(t, "從高雄到洛杉磯的40hq")
	require.NotNil(t, ex.Origin)
	assert.Equal(t, "KHH", ex.Origin.Code)

	ex = extract(t, "從高雄改成從上海到洛杉磯的40hq")
	require.NotNil(t, ex.Origin)
	assert.Equal(t, "KHH", ex.Origin.Code)

	cued := 0
	for _, cand := range ex.OriginCandidates {
		if cand.Cued {
			cued++
		}
	}
	assert.GreaterOrEqual(t, cued, 2)
}

func TestExtractUncuedMentionDoesNotClaimRole(t *testing.T) {
	ex := extract(t, "上海 洛杉磯 40hq")

	assert.False(t, ex.Complete())
	assert.Nil(t, ex.Origin)
	assert.Nil(t, ex.Destination)
	require.NotNil(t, ex.ContainerType)

	// Uncued mentions are still surfaced as candidates for both roles.
	assert.NotEmpty(t, ex.OriginCandidates)
	assert.NotEmpty(t, ex.DestinationCandidates)
}

func TestExtractLastContainerMentionWins(t *testing.T) {
	ex := extract(t, "從上海到洛杉磯 20gp 改成 40hq")

	require.NotNil(t, ex.ContainerType)
	assert.Equal(t, "40HQ", ex.ContainerType.Code)
	assert.Len(t, ex.ContainerCandidates, 2)
}

func TestExtractEmptyQuery(t *testing.T) {
	ex := extract(t, "")

	assert.False(t, ex.Complete())
	assert.Empty(t, ex.OriginCandidates)
	assert.Empty(t, ex.ContainerCandidates)
}

func TestExtractRecordsCuedCandidates(t *testing.T) {
	ex := extract(t, "從上海到洛杉磯的40HQ")

	require.NotEmpty(t, ex.OriginCandidates)
	found := false
	for _, cand := range ex.OriginCandidates {
		if cand.Code == "SHA" && cand.Cued {
			found = true
		}
	}
	assert.True(t, found, "expected a cued SHA origin candidate")
}
