package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{input: "09:00", want: "09:00"},
		{input: "00:00", want: "00:00"},
		{input: "23:59", want: "23:59"},
		{input: "24:00", wantErr: true},
		{input: "9:00", wantErr: true},
		{input: "09:60", wantErr: true},
		{input: "", wantErr: true},
		{input: "morning", wantErr: true},
	}

	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringAddMinutes(t *testing.T) {
	cases := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{name: "within day", start: "09:00", minutes: 90, want: "10:30"},
		{name: "wraps past midnight", start: "23:50", minutes: 30, want: "00:20"},
		{name: "negative shift", start: "00:10", minutes: -30, want: "23:40"},
		{name: "zero shift", start: "12:00", minutes: 0, want: "12:00"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringComparisons(t *testing.T) {
	require.True(t, TimeString("09:00").IsBefore("18:00"))
	require.False(t, TimeString("18:00").IsBefore("09:00"))
	require.False(t, TimeString("09:00").IsBefore("09:00"))
	require.True(t, TimeString("18:00").IsAfter("09:00"))
}

func TestTimeStringOnDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Helsinki")
	require.NoError(t, err)

	date := time.Date(2026, 3, 2, 15, 45, 0, 0, loc)

	got, err := TimeString("09:30").OnDate(date)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, loc), got)
}

func TestTimeStringScan(t *testing.T) {
	t.Run("time column with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("09:30:00"))
		require.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("plain HH:MM", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("18:00")))
		require.Equal(t, TimeString("18:00"), ts)
	})

	t.Run("nil resets value", func(t *testing.T) {
		ts := TimeString("09:00")
		require.NoError(t, ts.Scan(nil))
		require.True(t, ts.IsZero())
	})

	t.Run("time.Time value", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 3, 2, 7, 15, 0, 0, time.UTC)))
		require.Equal(t, TimeString("07:15"), ts)
	})
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	require.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	require.Nil(t, v)

	_, err = TimeString("garbage").Value()
	require.ErrorIs(t, err, ErrInvalidTimeString)
}
