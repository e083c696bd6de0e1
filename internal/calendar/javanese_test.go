package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToJavaneseKnownDates(t *testing.T) {
	cases := []struct {
		date Date
		want JavaneseDate
	}{
		{JavaneseEpoch, JavaneseDate{Day: 1, Pasaran: Legi, Month: 1, Year: 1555}},
		{Date{1633, time.July, 7}, JavaneseDate{Day: 30, Pasaran: Kliwon, Month: 12, Year: 1554}},
		{Date{1945, time.August, 17}, JavaneseDate{Day: 26, Pasaran: Legi, Month: 8, Year: 1877}},
		{Date{2025, time.January, 1}, JavaneseDate{Day: 8, Pasaran: Pon, Month: 3, Year: 1958}},
		{Date{2025, time.June, 27}, JavaneseDate{Day: 5, Pasaran: Kliwon, Month: 9, Year: 1959}},
		{Date{1, time.January, 1}, JavaneseDate{Day: 17, Pasaran: Pahing, Month: 9, Year: -130}},
	}
	for _, tc := range cases {
		t.Run(tc.date.String(), func(t *testing.T) {
			require.Equal(t, tc.want, ToJavanese(tc.date))
		})
	}
}

func TestToJavaneseCyclesAcrossEpoch(t *testing.T) {
	start := JavaneseEpoch.Time().AddDate(0, 0, -400)
	prev := ToJavanese(DateOf(start))
	for i := 1; i <= 800; i++ {
		cur := ToJavanese(DateOf(start.AddDate(0, 0, i)))
		require.Equal(t, (prev.Pasaran+1)%5, cur.Pasaran, "pasaran step at offset %d", i)
		if prev.Day == 30 {
			require.Equal(t, 1, cur.Day)
			require.Equal(t, prev.Month%12+1, cur.Month)
		} else {
			require.Equal(t, prev.Day+1, cur.Day)
			require.Equal(t, prev.Month, cur.Month)
		}
		require.GreaterOrEqual(t, cur.Year, prev.Year)
		prev = cur
	}
}

func TestToJavanesePeriods(t *testing.T) {
	for _, base := range []Date{{1, time.March, 3}, {1633, time.July, 1}, {2025, time.February, 10}} {
		j := ToJavanese(base)
		five := ToJavanese(DateOf(base.Time().AddDate(0, 0, 5)))
		thirty := ToJavanese(DateOf(base.Time().AddDate(0, 0, 30)))
		require.Equal(t, j.Pasaran, five.Pasaran)
		require.Equal(t, j.Day, thirty.Day)
	}
}

func TestToJavaneseRangeEnds(t *testing.T) {
	for _, d := range []Date{{MinYear, time.January, 1}, {MaxYear, time.December, 31}} {
		j := ToJavanese(d)
		require.GreaterOrEqual(t, j.Day, 1)
		require.LessOrEqual(t, j.Day, 30)
		require.NotEmpty(t, j.Pasaran.String())
		require.NotEmpty(t, j.MonthName())
	}
}

func TestPasaranString(t *testing.T) {
	require.Equal(t, "Legi", Legi.String())
	require.Equal(t, "Kliwon", Kliwon.String())
	require.Equal(t, "", Pasaran(9).String())
}
