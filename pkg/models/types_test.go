package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestActivityUpdateApplyTo(t *testing.T) {
	act := Activity{
		ID:          "a1",
		Time:        "10:00",
		Description: "抵達機場",
		Notes:       "提領行李",
	}

	out := ActivityUpdate{Time: ptr("11:00"), Notes: ptr("")}.ApplyTo(act)

	assert.Equal(t, "11:00", out.Time)
	assert.Equal(t, "", out.Notes) // an empty slot clears the field
	assert.Equal(t, "抵達機場", out.Description)

	// the input value is untouched
	assert.Equal(t, "10:00", act.Time)
	assert.Equal(t, "提領行李", act.Notes)
}

func TestActivityUpdateIsZero(t *testing.T) {
	assert.True(t, ActivityUpdate{}.IsZero())
	assert.False(t, ActivityUpdate{ImageURL: ptr("data:image/png;base64,AA==")}.IsZero())
}

func TestCloneDaysSharesNothing(t *testing.T) {
	days := []TripDay{
		{ID: "day1", Activities: []Activity{{ID: "a1", Description: "x"}}},
	}

	cloned := CloneDays(days)
	cloned[0].Activities[0].Description = "y"
	cloned[0].Activities = append(cloned[0].Activities, Activity{ID: "a2"})

	assert.Equal(t, "x", days[0].Activities[0].Description)
	assert.Len(t, days[0].Activities, 1)
}
