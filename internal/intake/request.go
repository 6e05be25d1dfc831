// Package intake is the driver (C8): it parses the one JSON request
// document, expands compound blocks, builds rooms/instructors, dispatches
// to the CP path and falls back to the GA path, and serializes the one
// JSON response document. Everything outside this package and cmd/scheduler
// (persistence, HTTP, packaging) is an external collaborator per spec.
package intake

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/udp-timetabling/scheduler/internal/domain"
)

// InstructorDataItem is one row of the input's instructorData array.
type InstructorDataItem struct {
	Name           string `json:"name" validate:"required"`
	CourseCode     string `json:"courseCode" validate:"required"`
	Subject        string `json:"subject"`
	Unit           int    `json:"unit" validate:"required,gt=0"`
	YearLevel      string `json:"yearLevel"`
	Block          string `json:"block"`
	EmploymentType string `json:"employmentType" validate:"required,oneof=FULL-TIME PART-TIME"`
	Dept           string `json:"dept"`
	SessionType    string `json:"sessionType" validate:"required,oneof='Lab session' 'Non-Lab session'"`
}

// RoomItem is one row of the input's rooms array.
type RoomItem struct {
	RoomID   int    `json:"room_id" validate:"required"`
	RoomName string `json:"room_name"`
	Capacity int    `json:"capacity" validate:"gte=0"`
	IsLab    bool   `json:"is_lab"`
	IsActive bool   `json:"is_active"`
}

// Request is the full decoded stdin document.
type Request struct {
	InstructorData []InstructorDataItem `json:"instructorData" validate:"required,min=1,dive"`
	Rooms          []RoomItem           `json:"rooms" validate:"required,min=1,dive"`
	TimeLimitSec   int                  `json:"timeLimitSec"`
	Seed           *int64               `json:"seed"`
}

var validatorInstance = validator.New()

// Validate runs struct-tag validation and returns one message per failed
// field, matching §7.1's "message describing the field" requirement.
func (r Request) Validate() []string {
	err := validatorInstance.Struct(r)
	if err == nil {
		return nil
	}
	var msgs []string
	for _, fe := range err.(validator.ValidationErrors) {
		msgs = append(msgs, describeFieldError(fe))
	}
	return msgs
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Namespace() + " is required"
	case "min":
		return fe.Namespace() + " must have at least " + fe.Param() + " item(s)"
	case "gt":
		return fe.Namespace() + " must be greater than " + fe.Param()
	case "gte":
		return fe.Namespace() + " must be at least " + fe.Param()
	case "oneof":
		return fe.Namespace() + " must be one of: " + fe.Param()
	default:
		return fe.Namespace() + " failed validation: " + fe.Tag()
	}
}

// expandBlocks splits a compound block label ("A & B", "A,B") into its
// individual members. A plain block is returned as a single-element slice.
func expandBlocks(block string) []string {
	block = strings.TrimSpace(block)
	if block == "" {
		return []string{""}
	}
	replacer := strings.NewReplacer("&", ",")
	parts := strings.Split(replacer.Replace(block), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{block}
	}
	return out
}

// ToDemands expands every instructorData row — including multi-block rows —
// into discrete CourseDemand units. This must run before any other
// component sees a demand: downstream code never carries a compound block.
func (r Request) ToDemands() []domain.CourseDemand {
	var demands []domain.CourseDemand
	for _, item := range r.InstructorData {
		emp := domain.FullTime
		if item.EmploymentType == string(domain.PartTime) {
			emp = domain.PartTime
		}
		requiresLab := item.SessionType == "Lab session"

		for _, block := range expandBlocks(item.Block) {
			demands = append(demands, domain.CourseDemand{
				Name:           item.Name,
				CourseCode:     item.CourseCode,
				Description:    item.Subject,
				Units:          item.Unit,
				YearLevel:      item.YearLevel,
				Block:          block,
				EmploymentType: emp,
				Department:     item.Dept,
				InstructorName: item.Name,
				RequiresLab:    requiresLab,
			})
		}
	}
	return demands
}

// ToRooms converts the input rooms array into domain.Room values.
func (r Request) ToRooms() []domain.Room {
	rooms := make([]domain.Room, 0, len(r.Rooms))
	for _, item := range r.Rooms {
		rooms = append(rooms, domain.Room{
			ID:       item.RoomID,
			Name:     item.RoomName,
			Capacity: item.Capacity,
			IsLab:    item.IsLab,
			IsActive: item.IsActive,
		})
	}
	return rooms
}

// BuildInstructors derives one Instructor per distinct name, in first-seen
// order, with a densely allocated id (1..N) — the only identifier this
// package manufactures that outlives a single solve.
func BuildInstructors(demands []domain.CourseDemand) map[string]domain.Instructor {
	instructors := make(map[string]domain.Instructor)
	nextID := 1
	for _, d := range demands {
		if _, ok := instructors[d.InstructorName]; ok {
			continue
		}
		instructors[d.InstructorName] = domain.Instructor{
			ID:             nextID,
			Name:           d.InstructorName,
			EmploymentType: d.EmploymentType,
		}
		nextID++
	}
	return instructors
}
