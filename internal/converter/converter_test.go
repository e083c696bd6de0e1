package converter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kalender-api/internal/calendar"
)

func TestHijriUmmAlQura(t *testing.T) {
	conv, err := NewHijri(HijriOptions{Method: MethodUmmAlQura})
	require.NoError(t, err)

	cases := []struct {
		date calendar.Date
		want calendar.HijriDate
	}{
		{calendar.Date{Year: 2025, Month: time.January, Day: 1}, calendar.HijriDate{Year: 1446, Month: 7, Day: 1}},
		{calendar.Date{Year: 2025, Month: time.January, Day: 27}, calendar.HijriDate{Year: 1446, Month: 7, Day: 27}},
		{calendar.Date{Year: 2025, Month: time.March, Day: 30}, calendar.HijriDate{Year: 1446, Month: 10, Day: 1}},
		{calendar.Date{Year: 2025, Month: time.June, Day: 6}, calendar.HijriDate{Year: 1446, Month: 12, Day: 10}},
		{calendar.Date{Year: 2025, Month: time.June, Day: 26}, calendar.HijriDate{Year: 1447, Month: 1, Day: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.date.String(), func(t *testing.T) {
			res := conv.ToHijri(tc.date)
			require.True(t, res.OK(), "unexpected error: %v", res.Err)
			require.Equal(t, tc.want, res.Value)
		})
	}
}

func TestHijriUmmAlQuraOutOfScope(t *testing.T) {
	conv, err := NewHijri(HijriOptions{})
	require.NoError(t, err)

	res := conv.ToHijri(calendar.Date{Year: 1900, Month: time.January, Day: 1})
	require.False(t, res.OK())
	require.Nil(t, res.Ptr())
}

func TestHijriArithmeticFallback(t *testing.T) {
	conv, err := NewHijri(HijriOptions{Method: MethodUmmAlQura, ArithmeticFallback: true})
	require.NoError(t, err)

	res := conv.ToHijri(calendar.Date{Year: 1900, Month: time.January, Day: 1})
	require.True(t, res.OK(), "unexpected error: %v", res.Err)
	require.Equal(t, 1317, res.Value.Year)
	require.GreaterOrEqual(t, res.Value.Month, 1)
	require.LessOrEqual(t, res.Value.Month, 12)
}

func TestHijriArithmeticBeforeEpoch(t *testing.T) {
	conv, err := NewHijri(HijriOptions{Method: MethodArithmetic})
	require.NoError(t, err)

	res := conv.ToHijri(calendar.Date{Year: 100, Month: time.January, Day: 1})
	require.False(t, res.OK())
}

func TestHijriArithmeticProlepticDates(t *testing.T) {
	conv, err := NewHijri(HijriOptions{Method: MethodArithmetic})
	require.NoError(t, err)

	cases := []struct {
		date calendar.Date
		want calendar.HijriDate
	}{
		{calendar.Date{Year: 622, Month: time.July, Day: 19}, calendar.HijriDate{Year: 1, Month: 1, Day: 1}},
		{calendar.Date{Year: 1000, Month: time.March, Day: 1}, calendar.HijriDate{Year: 390, Month: 3, Day: 15}},
		{calendar.Date{Year: 1500, Month: time.January, Day: 1}, calendar.HijriDate{Year: 905, Month: 5, Day: 20}},
		{calendar.Date{Year: 1582, Month: time.October, Day: 10}, calendar.HijriDate{Year: 990, Month: 9, Day: 12}},
		{calendar.Date{Year: 1582, Month: time.October, Day: 14}, calendar.HijriDate{Year: 990, Month: 9, Day: 16}},
		{calendar.Date{Year: 1582, Month: time.October, Day: 15}, calendar.HijriDate{Year: 990, Month: 9, Day: 17}},
		{calendar.Date{Year: 2025, Month: time.January, Day: 1}, calendar.HijriDate{Year: 1446, Month: 7, Day: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.date.String(), func(t *testing.T) {
			res := conv.ToHijri(tc.date)
			require.True(t, res.OK(), "unexpected error: %v", res.Err)
			require.Equal(t, tc.want, res.Value)
		})
	}

	for _, day := range []int{16, 18} {
		res := conv.ToHijri(calendar.Date{Year: 622, Month: time.July, Day: day})
		require.False(t, res.OK(), "622-07-%02d precedes 1 Muharram 1", day)
	}
}

func TestNewHijriRejectsUnknownMethod(t *testing.T) {
	_, err := NewHijri(HijriOptions{Method: "astronomical"})
	require.Error(t, err)
}

func TestLunarChineseNewYear(t *testing.T) {
	conv := NewLunar()

	res := conv.ToLunar(calendar.Date{Year: 2025, Month: time.January, Day: 29})
	require.True(t, res.OK(), "unexpected error: %v", res.Err)
	require.Equal(t, calendar.LunarDate{Year: 2025, Month: 1, Day: 1}, res.Value)

	res = conv.ToLunar(calendar.Date{Year: 2025, Month: time.January, Day: 28})
	require.True(t, res.OK())
	require.Equal(t, 12, res.Value.Month)
}

func TestLunarProlepticDates(t *testing.T) {
	conv := NewLunar()

	cases := []struct {
		date calendar.Date
		want calendar.LunarDate
	}{
		{calendar.Date{Year: 1500, Month: time.January, Day: 1}, calendar.LunarDate{Year: 1499, Month: 11, Day: 21}},
		{calendar.Date{Year: 1582, Month: time.October, Day: 10}, calendar.LunarDate{Year: 1582, Month: 9, Day: 14}},
		{calendar.Date{Year: 1582, Month: time.October, Day: 15}, calendar.LunarDate{Year: 1582, Month: 9, Day: 19}},
	}
	for _, tc := range cases {
		t.Run(tc.date.String(), func(t *testing.T) {
			res := conv.ToLunar(tc.date)
			require.True(t, res.OK(), "unexpected error: %v", res.Err)
			require.Equal(t, tc.want, res.Value)
		})
	}

	for day := 5; day <= 14; day++ {
		res := conv.ToLunar(calendar.Date{Year: 1582, Month: time.October, Day: day})
		require.True(t, res.OK(), "1582-10-%02d: %v", day, res.Err)
	}
}

func TestResultHelpers(t *testing.T) {
	ok := Success(calendar.HijriDate{Year: 1446, Month: 1, Day: 1})
	require.True(t, ok.OK())
	require.NotNil(t, ok.Ptr())
	require.Equal(t, 1446, ok.Ptr().Year)

	failed := Failure[calendar.HijriDate](errors.New("boom"))
	require.False(t, failed.OK())
	require.Nil(t, failed.Ptr())
}

func TestRecoverIntoCapturesPanic(t *testing.T) {
	conv := HijriFunc(func(d calendar.Date) (res Result[calendar.HijriDate]) {
		defer recoverInto(&res.Err, "stub", d)
		panic("table exhausted")
	})
	res := conv.ToHijri(calendar.Date{Year: 2025, Month: time.January, Day: 1})
	require.False(t, res.OK())
	require.Contains(t, res.Err.Error(), "table exhausted")
}
