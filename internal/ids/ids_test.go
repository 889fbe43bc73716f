package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatementIDDeterministic(t *testing.T) {
	seed := EntitySeed("213800BJPX8V9HVY1Y11", "2023-04-25T13:18:00Z")
	id1 := StatementID(seed, "entityStatement")
	id2 := StatementID(seed, "entityStatement")
	assert.Equal(t, id1, id2)
	assert.Len(t, id1, 36)
}

func TestStatementIDVariesByRole(t *testing.T) {
	seed := "seed-value"
	assert.NotEqual(t, StatementID(seed, "entityStatement"), StatementID(seed, "voided"))
}

func TestRepexSeedFallsBackToNone(t *testing.T) {
	withRef := RepexSeed("LEI1", "DIRECT_ACCOUNTING_CONSOLIDATION_PARENT", "NO_LEI", "ref-1", "2023-01-01")
	withoutRef := RepexSeed("LEI1", "DIRECT_ACCOUNTING_CONSOLIDATION_PARENT", "NO_LEI", "", "2023-01-01")
	assert.Contains(t, withoutRef, "_None_")
	assert.NotContains(t, withRef, "_None_")
}

func TestFormatDateHandlesFractionalAndZ(t *testing.T) {
	assert.Equal(t, "2023-06-18", FormatDate("2023-06-18T15:41:20.212Z"))
	assert.Equal(t, "2023-04-25", FormatDate("2023-04-25T13:18:00Z"))
}
