package service

import (
	crewModel "studioops/internal/domains/crew/model"
)

// Available returns the roster members whose id is not in assigned,
// preserving roster order. An assignment occupies its slot whatever its
// booking status; a declined crew member stays unavailable until the
// assignment is removed.
func Available(roster []crewModel.Crew, assigned []string) []crewModel.Crew {
	taken := make(map[string]struct{}, len(assigned))
	for _, id := range assigned {
		taken[id] = struct{}{}
	}

	available := make([]crewModel.Crew, 0, len(roster))

	for _, member := range roster {
		if _, ok := taken[member.ID]; ok {
			continue
		}

		available = append(available, member)
	}

	return available
}
