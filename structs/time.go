package structs

import (
	"errors"
	"fmt"
)

//*******************************************
// time arithmetic
//*******************************************

const MINUTES_PER_DAY = 1440

// TimeOfDay maps an absolute minute onto the wall clock.
func TimeOfDay(minute int64) int32 {
	m := minute % MINUTES_PER_DAY
	if m < 0 {
		m += MINUTES_PER_DAY
	}
	return int32(m)
}

func FormatTimeOfDay(minute int32) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

func ParseTimeOfDay(s string) (int32, error) {
	var hour, min int32
	n, err := fmt.Sscanf(s, "%d:%d", &hour, &min)
	if err != nil || n != 2 {
		return 0, errors.New("invalid time of day: " + s)
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, errors.New("time of day out of range: " + s)
	}
	return hour*60 + min, nil
}

// NextDeparture picks the smallest absolute minute t with
// t mod 1440 == departure and t >= arrival + min_wait.
func NextDeparture(arrival int64, departure int32, min_wait int32) int64 {
	earliest := arrival + int64(min_wait)
	day := earliest / MINUTES_PER_DAY
	candidate := day*MINUTES_PER_DAY + int64(departure)
	if candidate >= earliest {
		return candidate
	}
	return (day+1)*MINUTES_PER_DAY + int64(departure)
}
