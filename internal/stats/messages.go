package stats

import "github.com/shopspring/decimal"

type threshold struct {
	min     decimal.Decimal
	message string
}

const journeyStart = "Every journey begins with a first step. Mark your first prayer to start."

var thresholds = []threshold{
	{decimal.RequireFromString("0"), "Nothing recorded as performed yet. Today is a good day to begin."},
	{decimal.RequireFromString("0.1"), "The first prayers are in. Keep going."},
	{decimal.RequireFromString("5"), "A start has been made. Consistency will carry you."},
	{decimal.RequireFromString("10"), "Ten percent. Small steps add up."},
	{decimal.RequireFromString("15"), "Steadily building. Keep the rhythm."},
	{decimal.RequireFromString("20"), "A fifth of the way. Stay with it."},
	{decimal.RequireFromString("25"), "A quarter done. The habit is taking root."},
	{decimal.RequireFromString("30"), "Nearly a third. Your effort shows."},
	{decimal.RequireFromString("40"), "Forty percent. Keep the momentum."},
	{decimal.RequireFromString("50"), "Halfway there. Well done."},
	{decimal.RequireFromString("60"), "More done than open. Keep it up."},
	{decimal.RequireFromString("70"), "Seventy percent. A strong record."},
	{decimal.RequireFromString("75"), "Three quarters done. Impressive steadiness."},
	{decimal.RequireFromString("80"), "Eighty percent. The finish is in sight."},
	{decimal.RequireFromString("85"), "Very consistent. Only a little remains."},
	{decimal.RequireFromString("90"), "Ninety percent. Excellent."},
	{decimal.RequireFromString("95"), "Almost everything is performed."},
	{decimal.RequireFromString("98"), "Just a handful left."},
	{decimal.RequireFromString("99"), "One last push."},
	{decimal.RequireFromString("100"), "Everything performed. May it be accepted."},
}

// ProgressMessage returns the encouragement for the largest threshold not
// above the percentage.
func ProgressMessage(p Progress) string {
	if p.NoData {
		return journeyStart
	}
	msg := thresholds[0].message
	for _, t := range thresholds {
		if p.Percent.GreaterThanOrEqual(t.min) {
			msg = t.message
		}
	}
	return msg
}
