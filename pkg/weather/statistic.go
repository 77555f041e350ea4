package weather

// Statistic is the closed set of aggregate functions the engine supports.
type Statistic string

const (
	StatisticMin Statistic = "min"
	StatisticMax Statistic = "max"
	StatisticSum Statistic = "sum"
	StatisticAvg Statistic = "avg"
)

// ParseStatistic validates the statistic name in every mode, whether or not
// a date range accompanies it.
func ParseStatistic(s string) (Statistic, error) {
	switch Statistic(s) {
	case StatisticMin, StatisticMax, StatisticSum, StatisticAvg:
		return Statistic(s), nil
	}
	return "", invalidParam("statistic", "must be one of min, max, sum, avg")
}

// sqlExpr maps each statistic to its aggregate expression over the value
// column. The switch is exhaustive over the closed set; ParseStatistic is
// the only constructor.
func (s Statistic) sqlExpr() string {
	switch s {
	case StatisticMin:
		return "MIN(value)"
	case StatisticMax:
		return "MAX(value)"
	case StatisticSum:
		return "SUM(value)"
	case StatisticAvg:
		return "AVG(value)"
	}
	panic("unreachable: unknown statistic " + string(s))
}
