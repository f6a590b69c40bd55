package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// dateRange returns n consecutive YYYY-MM-DD dates starting at start
func dateRange(t *testing.T, start string, n int) []string {
	t.Helper()
	first, err := time.Parse("2006-01-02", start)
	require.NoError(t, err)

	dates := make([]string, n)
	for i := range n {
		dates[i] = first.AddDate(0, 0, i).Format("2006-01-02")
	}
	return dates
}

// stayFor returns a stay covering every date in dates requiring the given staff count
func stayFor(dates []string, staffNeeded int, params Params) Stay {
	last, _ := time.Parse("2006-01-02", dates[len(dates)-1])
	return Stay{
		CheckIn:   dates[0],
		CheckOut:  last.AddDate(0, 0, 1).Format("2006-01-02"),
		BabyCount: staffNeeded * params.NewbornsPerStaff,
	}
}

func intPtr(v int) *int {
	return &v
}
