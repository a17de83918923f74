package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "full form", input: "09:30:00", want: "09:30:00"},
		{name: "short form normalized to seconds", input: "14:30", want: "14:30:00"},
		{name: "midnight", input: "00:00:00", want: "00:00:00"},
		{name: "last slot of day", input: "23:30:00", want: "23:30:00"},
		{name: "invalid hour", input: "25:00:00", wantErr: true},
		{name: "invalid minute", input: "10:61:00", wantErr: true},
		{name: "garbage", input: "not-a-time", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	// Лексикографический порядок строк фиксированной ширины
	// совпадает с хронологическим
	assert.True(t, TimeString("09:00:00").IsBefore("10:00:00"))
	assert.True(t, TimeString("09:59:59").IsBefore("10:00:00"))
	assert.True(t, TimeString("10:00:00").IsAfter("09:59:59"))
	assert.False(t, TimeString("09:00:00").IsBefore("09:00:00"))
	assert.False(t, TimeString("09:00:00").IsAfter("09:00:00"))
}

func TestTimeString_InRange(t *testing.T) {
	from := TimeString("09:00:00")
	to := TimeString("18:00:00")

	// Обе границы включительно
	assert.True(t, TimeString("09:00:00").InRange(from, to))
	assert.True(t, TimeString("18:00:00").InRange(from, to))
	assert.True(t, TimeString("12:30:00").InRange(from, to))

	assert.False(t, TimeString("08:30:00").InRange(from, to))
	assert.False(t, TimeString("18:30:00").InRange(from, to))
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := TimeString("09:00:00")

	next, err := start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30:00"), next)

	crossHour, err := TimeString("09:45:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15:00"), crossHour)

	_, err = TimeString("23:45:00").AddMinutes(30)
	assert.Error(t, err)
}

func TestTimeString_Clock(t *testing.T) {
	hour, minute, second, err := TimeString("14:35:10").Clock()
	require.NoError(t, err)
	assert.Equal(t, 14, hour)
	assert.Equal(t, 35, minute)
	assert.Equal(t, 10, second)

	_, _, _, err = TimeString("bad").Clock()
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, TimeString("09:30:00"), NewTimeString(moment))

	// Субсекундная точность отбрасывается
	withNanos := time.Date(2025, 10, 15, 9, 30, 0, 999999999, time.UTC)
	assert.Equal(t, TimeString("09:30:00"), NewTimeString(withNanos))
}

func TestTimeString_Scan(t *testing.T) {
	var fromBytes TimeString
	require.NoError(t, fromBytes.Scan([]byte("09:30:00")))
	assert.Equal(t, TimeString("09:30:00"), fromBytes)

	var fromString TimeString
	require.NoError(t, fromString.Scan("18:00:00"))
	assert.Equal(t, TimeString("18:00:00"), fromString)

	var fromTime TimeString
	require.NoError(t, fromTime.Scan(time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("12:00:00"), fromTime)

	var invalid TimeString
	assert.Error(t, invalid.Scan(42))
}
