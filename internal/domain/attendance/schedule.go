package attendance

// Window maps an inclusive range of minutes since local midnight to a status.
type Window struct {
	From   int
	To     int
	Status Status
}

func (w Window) Contains(minutes int) bool {
	return minutes >= w.From && minutes <= w.To
}

// Schedule is the fixed daily check-in schedule. Windows are checked in order;
// a check-in outside all of them gets Fallback.
type Schedule struct {
	Windows  []Window
	Fallback Status
}

// DefaultSchedule: 09:00-09:30 present, 09:31-11:30 late, otherwise half time.
var DefaultSchedule = Schedule{
	Windows: []Window{
		{From: 9 * 60, To: 9*60 + 30, Status: StatusPresent},
		{From: 9*60 + 31, To: 11*60 + 30, Status: StatusLate},
	},
	Fallback: StatusHalfTime,
}

// Classify maps minutes since local midnight to a status.
func (s Schedule) Classify(minutes int) Status {
	for _, w := range s.Windows {
		if w.Contains(minutes) {
			return w.Status
		}
	}
	return s.Fallback
}
