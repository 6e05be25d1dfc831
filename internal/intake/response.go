package intake

import (
	"strconv"

	"github.com/udp-timetabling/scheduler/internal/domain"
)

// ScheduleItem is one row of the output's schedules array.
type ScheduleItem struct {
	Instructor         string `json:"instructor"`
	InstructorID       int    `json:"instructor_id"`
	SubjectCode        string `json:"subject_code"`
	SubjectDescription string `json:"subject_description"`
	Unit               int    `json:"unit"`
	Day                string `json:"day"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	Block              string `json:"block"`
	YearLevel          string `json:"year_level"`
	EmploymentType     string `json:"employment_type"`
	SessionType        string `json:"sessionType"`
	RoomID             *int   `json:"room_id"`
	Dept               string `json:"dept"`
	Section            string `json:"section"`
}

// Response is the full stdout document.
type Response struct {
	Success         bool           `json:"success"`
	Message         string         `json:"message"`
	Schedules       []ScheduleItem `json:"schedules"`
	Conflicts       map[string]int `json:"conflicts,omitempty"`
	Fitness         float64        `json:"fitness,omitempty"`
	TotalConflicts  int            `json:"total_conflicts,omitempty"`
	GenerationsRun  int            `json:"generations_run,omitempty"`
	Errors          []string       `json:"errors,omitempty"`
}

// dayName renders a calendar day as the display string the output schema
// expects ("Monday", …).
func dayName(d domain.Day) string {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if int(d) < 0 || int(d) >= len(names) {
		return "Unknown"
	}
	return names[d]
}

// toScheduleItems converts scheduled sessions into the output schema.
func toScheduleItems(sessions []domain.ScheduledSession, instructors map[string]domain.Instructor) []ScheduleItem {
	out := make([]ScheduleItem, 0, len(sessions))
	for _, s := range sessions {
		instructor := instructors[s.Demand.InstructorName]
		out = append(out, ScheduleItem{
			Instructor:         s.Demand.InstructorName,
			InstructorID:       instructor.ID,
			SubjectCode:        s.Demand.CourseCode,
			SubjectDescription: s.Demand.Description,
			Unit:               s.Demand.Units,
			Day:                dayName(s.Day),
			StartTime:          s.Start,
			EndTime:            s.End,
			Block:              s.Demand.Block,
			YearLevel:          s.Demand.YearLevel,
			EmploymentType:     string(s.Demand.EmploymentType),
			SessionType:        s.SessionType,
			RoomID:             s.RoomID,
			Dept:               s.Demand.Department,
			Section:            s.Demand.Section(),
		})
	}
	return out
}

// To12Hour renders an HH:MM:SS 24-hour string as "h:MM AM/PM", the display
// helper named in §6.
func To12Hour(hms string) string {
	if len(hms) < 5 {
		return hms
	}
	hour := int(hms[0]-'0')*10 + int(hms[1]-'0')
	minute := hms[3:5]
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return strconv.Itoa(display) + ":" + minute + " " + suffix
}
