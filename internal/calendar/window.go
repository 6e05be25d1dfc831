package calendar

import "github.com/udp-timetabling/scheduler/internal/domain"

// template is one (start, end, period) shape before it is expanded across
// every day of the week.
type template struct {
	start, end string
	period     domain.Period
}

// templates are the fixed shapes named in the catalog. Order here is the
// order they are expanded in, before shuffling.
var templates = []template{
	// morning
	{"07:30:00", "09:00:00", domain.Morning},
	{"09:00:00", "10:30:00", domain.Morning},
	{"10:30:00", "12:00:00", domain.Morning},
	// afternoon
	{"13:00:00", "14:30:00", domain.Afternoon},
	{"14:30:00", "16:00:00", domain.Afternoon},
	{"16:00:00", "17:30:00", domain.Afternoon},
	{"15:00:00", "16:30:00", domain.Afternoon},
	// afternoon_long
	{"13:00:00", "16:30:00", domain.AfternoonLong},
	{"13:00:00", "17:30:00", domain.AfternoonLong},
	{"13:00:00", "17:00:00", domain.AfternoonLong},
	{"13:00:00", "18:00:00", domain.AfternoonLong},
	{"16:00:00", "19:00:00", domain.AfternoonLong},
	// evening
	{"17:00:00", "20:00:00", domain.Evening},
	{"17:00:00", "18:30:00", domain.Evening},
	{"18:00:00", "19:30:00", domain.Evening},
	{"18:30:00", "20:00:00", domain.Evening},
}

// Catalog is the enumerated set of candidate windows for one solve.
type Catalog struct {
	Windows []domain.Window
}

// Generate expands every template across all six days, shuffles the
// expanded list, then re-interleaves by a randomized day order so
// consecutive windows rotate through days instead of clustering on
// whichever day shuffle happened to front-load. Upstream selection (both
// solver paths) often scans from the head of the list; interleaving
// eliminates the first-day bias that a plain shuffle would leave in place.
func Generate(r Rand) Catalog {
	var expanded []domain.Window
	for day := domain.Monday; day <= domain.Saturday; day++ {
		for _, t := range templates {
			expanded = append(expanded, domain.Window{Day: day, Start: t.start, End: t.end, Period: t.period})
		}
	}
	r.Shuffle(len(expanded), func(i, j int) { expanded[i], expanded[j] = expanded[j], expanded[i] })

	dayOrder := make([]domain.Day, 0, 6)
	for day := domain.Monday; day <= domain.Saturday; day++ {
		dayOrder = append(dayOrder, day)
	}
	r.Shuffle(len(dayOrder), func(i, j int) { dayOrder[i], dayOrder[j] = dayOrder[j], dayOrder[i] })
	dayRank := make(map[domain.Day]int, len(dayOrder))
	for i, d := range dayOrder {
		dayRank[d] = i
	}

	byDay := make([][]domain.Window, len(dayOrder))
	for _, w := range expanded {
		byDay[dayRank[w.Day]] = append(byDay[dayRank[w.Day]], w)
	}

	interleaved := make([]domain.Window, 0, len(expanded))
	for more := true; more; {
		more = false
		for i := range byDay {
			if len(byDay[i]) == 0 {
				continue
			}
			interleaved = append(interleaved, byDay[i][0])
			byDay[i] = byDay[i][1:]
			if len(byDay[i]) > 0 {
				more = true
			}
		}
	}

	return Catalog{Windows: interleaved}
}

// ForEmploymentType filters and orders the catalog per the employment
// preference rules: PART-TIME prefers evening, then afternoon, then
// morning; FULL-TIME keeps every window within 07:00–20:00 (the catalog
// never produces anything outside that range, so this is effectively
// everything, kept distinct for clarity and future tightening).
func (c Catalog) ForEmploymentType(emp domain.EmploymentType) []domain.Window {
	if emp == domain.FullTime {
		out := make([]domain.Window, 0, len(c.Windows))
		for _, w := range c.Windows {
			if w.Start >= "07:00:00" && w.End <= "20:00:00" {
				out = append(out, w)
			}
		}
		return out
	}

	var evening, afternoon, morning []domain.Window
	for _, w := range c.Windows {
		switch {
		case w.Start >= "17:00:00":
			evening = append(evening, w)
		case w.Start >= "13:00:00" && w.Start < "17:00:00":
			afternoon = append(afternoon, w)
		case w.Start >= "07:00:00" && w.Start < "13:00:00":
			morning = append(morning, w)
		}
	}
	out := make([]domain.Window, 0, len(evening)+len(afternoon)+len(morning))
	out = append(out, evening...)
	out = append(out, afternoon...)
	out = append(out, morning...)
	return out
}

// FitsDuration reports whether a window is long enough to host a session of
// the given duration in hours.
func FitsDuration(w domain.Window, hours float64) bool {
	return hoursBetween(w.Start, w.End) >= hours-0.01
}

// hoursBetween converts two HH:MM:SS strings into an hour delta.
func hoursBetween(start, end string) float64 {
	sh, sm := clockParts(start)
	eh, em := clockParts(end)
	return float64(eh*60+em-(sh*60+sm)) / 60.0
}

func clockParts(hms string) (hour, minute int) {
	if len(hms) < 5 {
		return 0, 0
	}
	hour = int(hms[0]-'0')*10 + int(hms[1]-'0')
	minute = int(hms[3]-'0')*10 + int(hms[4]-'0')
	return hour, minute
}
