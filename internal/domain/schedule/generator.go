package schedule

import "time"

// SlotMinutes is the canonical slot granularity. Every bookable interval
// starts on a 30-minute boundary inside the day's opening window.
const SlotMinutes = 30

// GenerateSlots returns the ordered slot start times for one calendar day.
//
// Slots run from open up to but never at or past close: close=18:00 yields a
// last slot at 17:30. A closed day yields nil. The function is pure; whether
// a slot is in the past is the resolver's concern, not the generator's.
func GenerateSlots(day DayHours, date time.Time) []time.Time {
	if !day.IsOpen {
		return nil
	}

	open := atTimeOfDay(day.Open, date)
	close := atTimeOfDay(day.Close, date)

	if !open.Before(close) {
		return nil
	}

	var slots []time.Time
	for cur := open; cur.Before(close); cur = cur.Add(SlotMinutes * time.Minute) {
		slots = append(slots, cur)
	}

	return slots
}
