package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatistic(t *testing.T) {
	for name, want := range map[string]Statistic{
		"min": StatisticMin,
		"max": StatisticMax,
		"sum": StatisticSum,
		"avg": StatisticAvg,
	} {
		got, err := ParseStatistic(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseStatistic_Invalid(t *testing.T) {
	for _, name := range []string{"median", "count", "", "AVG"} {
		_, err := ParseStatistic(name)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "statistic %q should fail", name)
	}
}

func TestStatisticSQLExpr(t *testing.T) {
	assert.Equal(t, "MIN(value)", StatisticMin.sqlExpr())
	assert.Equal(t, "MAX(value)", StatisticMax.sqlExpr())
	assert.Equal(t, "SUM(value)", StatisticSum.sqlExpr())
	assert.Equal(t, "AVG(value)", StatisticAvg.sqlExpr())
}
