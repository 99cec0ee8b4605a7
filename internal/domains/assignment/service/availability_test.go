package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studioops/internal/domains/assignment/service"
	crewModel "studioops/internal/domains/crew/model"
)

func roster(ids ...string) []crewModel.Crew {
	members := make([]crewModel.Crew, len(ids))
	for i, id := range ids {
		members[i] = crewModel.Crew{ID: id, Name: "member " + id}
	}

	return members
}

func ids(members []crewModel.Crew) []string {
	res := make([]string, len(members))
	for i, member := range members {
		res[i] = member.ID
	}

	return res
}

func TestAvailable(t *testing.T) {
	tests := []struct {
		name     string
		roster   []crewModel.Crew
		assigned []string
		expected []string
	}{
		{
			name:     "no assignments leaves the full roster",
			roster:   roster("a", "b", "c"),
			assigned: nil,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "assigned members drop out",
			roster:   roster("a", "b", "c"),
			assigned: []string{"b"},
			expected: []string{"a", "c"},
		},
		{
			name:     "everyone assigned leaves nobody",
			roster:   roster("a", "b"),
			assigned: []string{"a", "b"},
			expected: []string{},
		},
		{
			name:     "assignment outside the roster is ignored",
			roster:   roster("a", "b"),
			assigned: []string{"z"},
			expected: []string{"a", "b"},
		},
		{
			name:     "empty roster",
			roster:   roster(),
			assigned: []string{"a"},
			expected: []string{},
		},
		{
			name:     "roster order is preserved",
			roster:   roster("c", "a", "b"),
			assigned: []string{"a"},
			expected: []string{"c", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.Available(tt.roster, tt.assigned)

			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestAvailable_PartitionsRoster(t *testing.T) {
	members := roster("a", "b", "c", "d")
	assigned := []string{"b", "d"}

	available := service.Available(members, assigned)

	assert.Len(t, available, len(members)-len(assigned))

	seen := map[string]bool{}
	for _, id := range assigned {
		seen[id] = true
	}

	for _, member := range available {
		assert.False(t, seen[member.ID], "assigned member %s should not be available", member.ID)
	}
}
