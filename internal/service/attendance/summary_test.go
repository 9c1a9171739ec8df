package attendance

import (
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func rec(date, status string) attendance.Attendance {
	return attendance.Attendance{Date: date, Status: status}
}

func TestBuildSummary_Empty(t *testing.T) {
	summary := buildSummary(nil)

	assert.Equal(t, 0, summary.Present)
	assert.Equal(t, 0, summary.Absent)
	assert.NotNil(t, summary.Series)
	assert.Len(t, summary.Series, 0)
}

func TestBuildSummary_GroupsByDateAscending(t *testing.T) {
	records := []attendance.Attendance{
		rec("2024-03-03", attendance.StatusPresent),
		rec("2024-03-01", attendance.StatusAbsent),
		rec("2024-03-02", attendance.StatusPresent),
		rec("2024-03-01", attendance.StatusPresent),
	}

	summary := buildSummary(records)

	assert.Equal(t, 3, summary.Present)
	assert.Equal(t, 1, summary.Absent)

	dates := make([]string, 0, len(summary.Series))
	for _, p := range summary.Series {
		dates = append(dates, p.Date)
	}
	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, dates)
}

func TestBuildSummary_DuplicateMarksSameDay(t *testing.T) {
	// Re-marking is allowed; every record counts.
	records := []attendance.Attendance{
		rec("2024-03-01", attendance.StatusPresent),
		rec("2024-03-01", attendance.StatusPresent),
		rec("2024-03-01", attendance.StatusAbsent),
	}

	summary := buildSummary(records)

	assert.Len(t, summary.Series, 1)
	assert.Equal(t, 2, summary.Series[0].Present)
	assert.Equal(t, 1, summary.Series[0].Absent)
}

func TestBuildSummary_TotalsEqualSumOfTallies(t *testing.T) {
	records := []attendance.Attendance{
		rec("2024-01-05", attendance.StatusPresent),
		rec("2024-01-05", attendance.StatusAbsent),
		rec("2024-01-06", attendance.StatusAbsent),
		rec("2024-01-07", attendance.StatusPresent),
		rec("2024-01-07", attendance.StatusPresent),
	}

	summary := buildSummary(records)

	sumPresent, sumAbsent := 0, 0
	for _, p := range summary.Series {
		sumPresent += p.Present
		sumAbsent += p.Absent
	}
	assert.Equal(t, summary.Present, sumPresent)
	assert.Equal(t, summary.Absent, sumAbsent)
}
