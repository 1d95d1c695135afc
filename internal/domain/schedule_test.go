package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mntdherm/CW-BookingService/pkg/types"
)

func TestOperatingWindowValidate(t *testing.T) {
	cases := []struct {
		name    string
		window  OperatingWindow
		wantErr bool
	}{
		{
			name:   "valid open window",
			window: OperatingWindow{OpenTime: "09:00", CloseTime: "18:00"},
		},
		{
			name:   "closed window needs no times",
			window: OperatingWindow{IsClosed: true},
		},
		{
			name:    "open equals close",
			window:  OperatingWindow{OpenTime: "09:00", CloseTime: "09:00"},
			wantErr: true,
		},
		{
			name:    "open after close",
			window:  OperatingWindow{OpenTime: "18:00", CloseTime: "09:00"},
			wantErr: true,
		},
		{
			name:    "open window without times",
			window:  OperatingWindow{},
			wantErr: true,
		},
		{
			name:    "malformed time",
			window:  OperatingWindow{OpenTime: "9am", CloseTime: "18:00"},
			wantErr: true,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidWindow)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOperatingWindowEnvelope(t *testing.T) {
	window := OperatingWindow{
		VendorID:  1,
		Weekday:   time.Monday,
		OpenTime:  types.TimeString("09:00"),
		CloseTime: types.TimeString("18:00"),
	}

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // понедельник

	envelope, err := window.Envelope(date)
	require.NoError(t, err)
	require.Equal(t, at(9, 0), envelope.Start)
	require.Equal(t, at(18, 0), envelope.End)
}

func TestOperatingWindowEnvelopeClosed(t *testing.T) {
	window := ClosedWindow(1, time.Sunday)

	require.True(t, window.IsClosed)
	_, err := window.Envelope(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrInvalidWindow)
}
