package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeilings_CapForSprint(t *testing.T) {
	c := NewCeilings(300, 90, 80, []SprintCap{{Nr: 2, Cap: 40}})
	assert.Equal(t, 80.0, c.CapForSprint(1))
	assert.Equal(t, 40.0, c.CapForSprint(2))
	assert.Equal(t, 80.0, c.CapForSprint(17))
}

func TestNewCeilings_LaterOverrideWins(t *testing.T) {
	c := NewCeilings(0, 0, 80, []SprintCap{{Nr: 1, Cap: 10}, {Nr: 1, Cap: 20}})
	assert.Equal(t, 20.0, c.CapForSprint(1))
}

func TestCeilings_ZeroOverrideIsNotDefault(t *testing.T) {
	c := NewCeilings(0, 0, 80, []SprintCap{{Nr: 3, Cap: 0}})
	assert.Equal(t, 0.0, c.CapForSprint(3))
}

func TestSprintCap_Validate(t *testing.T) {
	assert.NoError(t, SprintCap{Nr: 1, Cap: 0}.Validate())
	assert.Error(t, SprintCap{Nr: 0, Cap: 10}.Validate())
	assert.Error(t, SprintCap{Nr: 1, Cap: -5}.Validate())
}

func TestNextSprintCapNr(t *testing.T) {
	assert.Equal(t, 1, NextSprintCapNr(nil))
	assert.Equal(t, 5, NextSprintCapNr([]SprintCap{{Nr: 4}, {Nr: 1}}))
}

func TestSortSprintCaps(t *testing.T) {
	caps := []SprintCap{{Nr: 3}, {Nr: 1}, {Nr: 2}}
	SortSprintCaps(caps)
	assert.Equal(t, []SprintCap{{Nr: 1}, {Nr: 2}, {Nr: 3}}, caps)
}
