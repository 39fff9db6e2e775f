package errorid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortByCode(t *testing.T) {
	records := []Record{
		{Name: "C", Code: 3},
		{Name: "B1", Code: 2},
		{Name: "A", Code: 1},
		{Name: "B2", Code: 2},
		{Name: "Z", Code: 100},
		{Name: "B3", Code: 2},
	}
	SortByCode(records)
	var names []string
	for _, r := range records {
		names = append(names, r.Name)
	}
	// Ties keep their original order.
	require.Equal(t, []string{"A", "B1", "B2", "B3", "C", "Z"}, names)
	for ii := 1; ii < len(records); ii++ {
		require.LessOrEqual(t, records[ii-1].Code, records[ii].Code)
	}

	// Empty and nil are fine.
	SortByCode(nil)
	SortByCode([]Record{})
}

func TestRecordString(t *testing.T) {
	r := Record{Name: "BadCharSet", Code: 1, Subsystem: "ES_DM", Severity: "E_FAILED", Generic: "EV_USAGE", ArgCount: "0"}
	require.Equal(t, "BadCharSet=1 (ES_DM, E_FAILED, EV_USAGE, args=0)", r.String())
}
