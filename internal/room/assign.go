package room

import (
	"sort"

	"github.com/udp-timetabling/scheduler/internal/domain"
)

// Assigner places rooms into already time-placed sessions, one at a time,
// greedily — used after the CP solver completes, and by the GA engine when
// it seeds, mutates and repairs individuals. It is not reentrant-safe;
// callers own one Assigner per solve.
type Assigner struct {
	rooms       []domain.Room
	totalUses   map[int]int
	dayUses     map[int]map[domain.Day]int
	occupied    map[int][]domain.ScheduledSession // roomID -> placements
	roundRobin  int
}

// NewAssigner seeds the assigner with the full room catalog.
func NewAssigner(rooms []domain.Room) *Assigner {
	return &Assigner{
		rooms:     rooms,
		totalUses: make(map[int]int),
		dayUses:   make(map[int]map[domain.Day]int),
		occupied:  make(map[int][]domain.ScheduledSession),
	}
}

// Assign picks a room for one scheduled session and records the placement.
// It returns the chosen room id, or nil if no suitable room — not even a
// fallback — was available (a lab demand with zero lab rooms).
func (a *Assigner) Assign(demand domain.CourseDemand, session domain.ScheduledSession) *int {
	candidates := a.availableSuitable(demand, session)
	if len(candidates) == 0 {
		candidates = a.availableFallback(demand.RequiresLab, session)
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return a.score(candidates[i], session.Day) > a.score(candidates[j], session.Day)
	})

	top := candidates
	if len(top) > 3 {
		top = top[:3]
	}
	chosen := top[a.roundRobin%len(top)]
	a.roundRobin++

	a.record(chosen, session)
	id := chosen.ID
	return &id
}

// score implements §4.6's ranking: reward rooms with fewer total uses and
// fewer uses on this particular day, with a mild capacity bonus so larger
// rooms aren't starved purely by the load-balancing terms.
func (a *Assigner) score(r domain.Room, day domain.Day) float64 {
	total := a.totalUses[r.ID]
	onDay := 0
	if m, ok := a.dayUses[r.ID]; ok {
		onDay = m[day]
	}
	capacityBonus := float64(r.Capacity) / 50.0
	if capacityBonus > 1 {
		capacityBonus = 1
	}
	return float64(100-total) + float64(50-onDay) + 20*capacityBonus
}

func (a *Assigner) availableSuitable(demand domain.CourseDemand, session domain.ScheduledSession) []domain.Room {
	var out []domain.Room
	for _, r := range a.rooms {
		if !Suitable(demand, r) {
			continue
		}
		if a.isFree(r.ID, session) {
			out = append(out, r)
		}
	}
	return out
}

func (a *Assigner) availableFallback(requiresLab bool, session domain.ScheduledSession) []domain.Room {
	var out []domain.Room
	for _, r := range FallbackRooms(requiresLab, a.rooms) {
		if a.isFree(r.ID, session) {
			out = append(out, r)
		}
	}
	return out
}

func (a *Assigner) isFree(roomID int, session domain.ScheduledSession) bool {
	for _, placed := range a.occupied[roomID] {
		if placed.Overlaps(session) {
			return false
		}
	}
	return true
}

func (a *Assigner) record(r domain.Room, session domain.ScheduledSession) {
	a.totalUses[r.ID]++
	if a.dayUses[r.ID] == nil {
		a.dayUses[r.ID] = make(map[domain.Day]int)
	}
	a.dayUses[r.ID][session.Day]++
	a.occupied[r.ID] = append(a.occupied[r.ID], session)
}
