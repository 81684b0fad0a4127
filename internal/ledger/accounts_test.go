package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAccountExpr_Empty(t *testing.T) {
	set, err := ParseAccountExpr("", []int{1000, 2000})
	assert.NoError(t, err)
	assert.Nil(t, set)
}

func TestParseAccountExpr_SingleCodes(t *testing.T) {
	set, err := ParseAccountExpr("7210, 3000", nil)
	assert.NoError(t, err)
	assert.Len(t, set, 2)
	assert.True(t, set.Contains(7210))
	assert.True(t, set.Contains(3000))
	assert.False(t, set.Contains(7211))
}

func TestParseAccountExpr_Range(t *testing.T) {
	set, err := ParseAccountExpr("6000-6002", nil)
	assert.NoError(t, err)
	assert.Len(t, set, 3)
	assert.True(t, set.Contains(6000))
	assert.True(t, set.Contains(6001))
	assert.True(t, set.Contains(6002))
}

func TestParseAccountExpr_ReversedRange(t *testing.T) {
	set, err := ParseAccountExpr("6002-6000", nil)
	assert.NoError(t, err)
	assert.Len(t, set, 3)
}

func TestParseAccountExpr_Wildcard(t *testing.T) {
	universe := []int{7300, 7310, 7400, 730}
	set, err := ParseAccountExpr("73*", universe)
	assert.NoError(t, err)
	assert.True(t, set.Contains(7300))
	assert.True(t, set.Contains(7310))
	assert.True(t, set.Contains(730))
	assert.False(t, set.Contains(7400))
}

func TestParseAccountExpr_WildcardWithoutUniverse(t *testing.T) {
	set, err := ParseAccountExpr("73*", nil)
	assert.NoError(t, err)
	assert.Empty(t, set)
}

func TestParseAccountExpr_Mixed(t *testing.T) {
	universe := []int{7300, 7310, 6100, 6500, 7210}
	set, err := ParseAccountExpr("6000-6199, 7210, 73*", universe)
	assert.NoError(t, err)
	assert.True(t, set.Contains(6100))
	assert.True(t, set.Contains(7210))
	assert.True(t, set.Contains(7310))
	assert.False(t, set.Contains(6500))
}

func TestParseAccountExpr_Invalid(t *testing.T) {
	for _, expr := range []string{"abc", "6000-abc", "*", "a*"} {
		_, err := ParseAccountExpr(expr, nil)
		assert.Error(t, err, "expression %q", expr)
	}
}
