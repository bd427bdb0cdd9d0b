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
		{name: "canonical form", input: "08:00", want: "08:00"},
		{name: "storage form with seconds", input: "08:00:00", want: "08:00"},
		{name: "storage form with timezone", input: "22:30:00+00", want: "22:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "missing zero padding", input: "8:00", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	got, err := NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), got)

	got, err = NewTimeStringFromMinutes(9*60 + 5)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), got)

	got, err = NewTimeStringFromMinutes(23*60 + 59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), got)

	_, err = NewTimeStringFromMinutes(-1)
	assert.Error(t, err)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	minutes, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	_, err = TimeString("invalid").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	// Переход через полночь
	got, err = TimeString("23:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("01:00"), got)

	got, err = TimeString("01:00").AddMinutes(-120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:00"), got)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.True(t, TimeString("09:00").IsAfter("08:00"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))
	assert.False(t, TimeString("08:00").IsAfter("08:00"))

	// Лексикографический порядок совпадает с временным только при
	// каноническом нулевом паддинге
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 18, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("not a time").Value()
	assert.Error(t, err)
}
