package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDay(t *testing.T) {
	assert.Equal(t, int32(0), TimeOfDay(0))
	assert.Equal(t, int32(480), TimeOfDay(480))
	assert.Equal(t, int32(480), TimeOfDay(480+MINUTES_PER_DAY))
	assert.Equal(t, int32(0), TimeOfDay(2*MINUTES_PER_DAY))

	// the clock is periodic in whole days
	for _, minute := range []int64{0, 59, 720, 1439, 5000} {
		assert.Equal(t, TimeOfDay(minute), TimeOfDay(minute+MINUTES_PER_DAY))
	}
}

func TestParseAndFormatTimeOfDay(t *testing.T) {
	cases := []struct {
		text   string
		minute int32
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"09:30", 570},
		{"23:59", 1439},
	}
	for _, c := range cases {
		minute, err := ParseTimeOfDay(c.text)
		require.NoError(t, err)
		assert.Equal(t, c.minute, minute)
		assert.Equal(t, c.text, FormatTimeOfDay(c.minute))
	}

	_, err := ParseTimeOfDay("24:00")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("monday")
	assert.Error(t, err)
}

func TestDepartureDuration(t *testing.T) {
	dep := &Departure{DepartureTime: 480, ArrivalTime: 540}
	assert.Equal(t, int32(60), dep.Duration())

	// overnight leg wraps past midnight
	overnight := &Departure{DepartureTime: 1380, ArrivalTime: 60}
	assert.Equal(t, int32(120), overnight.Duration())

	instant := &Departure{DepartureTime: 600, ArrivalTime: 600}
	assert.Equal(t, int32(0), instant.Duration())

	// departure time-of-day plus duration lands on the arrival time-of-day
	for _, d := range []*Departure{dep, overnight, instant} {
		assert.Equal(t, d.ArrivalTime, TimeOfDay(int64(d.DepartureTime)+int64(d.Duration())))
	}
}

func TestNextDeparture(t *testing.T) {
	// arrived before todays slot, board today
	assert.Equal(t, int64(480), NextDeparture(0, 480, 0))
	assert.Equal(t, int64(480), NextDeparture(400, 480, 30))

	// missed todays slot, board tomorrow
	assert.Equal(t, int64(1920), NextDeparture(540, 480, 30))
	assert.Equal(t, int64(1920), NextDeparture(481, 480, 0))

	// exact fit boards immediately
	assert.Equal(t, int64(480), NextDeparture(450, 480, 30))

	// later days keep the same time-of-day
	next := NextDeparture(3*MINUTES_PER_DAY+600, 480, 0)
	assert.Equal(t, int64(4*MINUTES_PER_DAY+480), next)
	assert.Equal(t, int32(480), TimeOfDay(next))
}
