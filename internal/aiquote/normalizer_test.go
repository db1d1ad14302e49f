package aiquote

import (
	"testing"

	"github.com/harborline/seaquote/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeLowercasesAndTrims(t *testing.T) {
	got := Normalize("  Rate From SHA To LAX  ", config.AliasTable{})
	assert.Equal(t, "rate from sha to lax", got)
}

func TestNormalizeAppendsAliasCanonicals(t *testing.T) {
	aliases := config.DefaultAliasTable()

	got := Normalize("rate from shanghai to los angeles", aliases)

	assert.Contains(t, got, "sha")
	assert.Contains(t, got, "上海")
	assert.Contains(t, got, "lax")
	assert.Contains(t, got, "洛杉磯")
}

func TestNormalizeSkipsCanonicalsAlreadyPresent(t *testing.T) {
	aliases := config.AliasTable{"shanghai": {"sha"}}

	got := Normalize("shanghai sha", aliases)

	assert.Equal(t, "shanghai sha", got)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	aliases := config.DefaultAliasTable()

	once := Normalize("請提供從上海到洛杉磯的40HQ運費", aliases)
	twice := Normalize(once, aliases)

	assert.Equal(t, once, twice)
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize("   ", config.DefaultAliasTable()))
}
