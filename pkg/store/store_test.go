package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esyang202423/tripboard/pkg/models"
)

func strptr(s string) *string { return &s }

func testDays() []models.TripDay {
	return []models.TripDay{
		{
			ID:    "day1",
			Date:  "02/12",
			Title: "抵達宿霧 🇵🇭",
			Activities: []models.Activity{
				{ID: "a1", Time: "10:00", Description: "抵達機場", Notes: "提領行李"},
				{ID: "a2", Time: "12:00", Description: "前往碼頭", Notes: "提早買票"},
			},
		},
		{
			ID:    "day2",
			Date:  "02/13",
			Title: "薄荷島一日遊",
			Activities: []models.Activity{
				{ID: "b1", Time: "09:00", Description: "巧克力山"},
			},
		},
	}
}

func TestUpdateActivityChangesOnlyTargetField(t *testing.T) {
	s := NewWithDays(testDays())
	before := s.Days()

	ok := s.UpdateActivity("day1", "a2", models.ActivityUpdate{Description: strptr("改搭巴士")})
	assert.True(t, ok)

	after := s.Days()
	assert.Equal(t, "改搭巴士", after[0].Activities[1].Description)

	// everything else is untouched
	assert.Equal(t, before[0].Activities[1].Time, after[0].Activities[1].Time)
	assert.Equal(t, before[0].Activities[1].Notes, after[0].Activities[1].Notes)
	assert.Equal(t, before[0].Activities[0], after[0].Activities[0])
	assert.Equal(t, before[1], after[1])
}

func TestUpdateActivityPartialSlots(t *testing.T) {
	s := NewWithDays(testDays())

	ok := s.UpdateActivity("day1", "a1", models.ActivityUpdate{
		Time:        strptr("11:30"),
		LocationURL: strptr("https://maps.google.com/?q=mactan"),
	})
	require.True(t, ok)

	act, found := s.Activity("day1", "a1")
	require.True(t, found)
	assert.Equal(t, "11:30", act.Time)
	assert.Equal(t, "https://maps.google.com/?q=mactan", act.LocationURL)
	assert.Equal(t, "抵達機場", act.Description)
	assert.Equal(t, "提領行李", act.Notes)
}

func TestUpdateActivityUnknownIDsAreNoOps(t *testing.T) {
	s := NewWithDays(testDays())
	before := s.Days()

	assert.False(t, s.UpdateActivity("nope", "a1", models.ActivityUpdate{Time: strptr("09:00")}))
	assert.False(t, s.UpdateActivity("day1", "nope", models.ActivityUpdate{Time: strptr("09:00")}))
	assert.False(t, s.UpdateActivity("day2", "a1", models.ActivityUpdate{Time: strptr("09:00")}))

	assert.Equal(t, before, s.Days())
}

func TestAddActivityAppendsWithFreshID(t *testing.T) {
	s := NewWithDays(testDays())

	act, ok := s.AddActivity("day1")
	require.True(t, ok)

	days := s.Days()
	require.Len(t, days[0].Activities, 3)
	assert.Equal(t, act, days[0].Activities[2])
	assert.Equal(t, DefaultNewTime, act.Time)
	assert.Equal(t, DefaultNewDescription, act.Description)

	// id is unique across the whole collection
	seen := map[string]int{}
	for _, d := range days {
		for _, a := range d.Activities {
			seen[a.ID]++
		}
	}
	assert.Equal(t, 1, seen[act.ID])
}

func TestAddActivityUnknownDayIsNoOp(t *testing.T) {
	s := NewWithDays(testDays())
	before := s.Days()

	_, ok := s.AddActivity("day9")
	assert.False(t, ok)
	assert.Equal(t, before, s.Days())
}

func TestDeleteActivityRemovesExactlyOneAndIsIdempotent(t *testing.T) {
	s := NewWithDays(testDays())

	assert.True(t, s.DeleteActivity("day1", "a1"))

	days := s.Days()
	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, "a2", days[0].Activities[0].ID)
	require.Len(t, days[1].Activities, 1)

	// second delete with the same pair is a no-op
	assert.False(t, s.DeleteActivity("day1", "a1"))
	assert.Equal(t, days, s.Days())

	// wrong day for an existing activity is also a no-op
	assert.False(t, s.DeleteActivity("day2", "a2"))
}

func TestSnapshotIsolation(t *testing.T) {
	s := NewWithDays(testDays())

	snap := s.Days()
	snap[0].Activities[0].Description = "tampered"
	snap[0].Activities = snap[0].Activities[:0]

	fresh := s.Days()
	assert.Equal(t, "抵達機場", fresh[0].Activities[0].Description)
	assert.Len(t, fresh[0].Activities, 2)
}

func TestTipsAndMeta(t *testing.T) {
	s := New()

	tips := s.Tips()
	require.Len(t, tips, 4)
	assert.Equal(t, "必備文件", tips[0].Title)

	meta := s.Meta()
	assert.Equal(t, "新春揚揚得意 菲律賓之旅", meta.Title)
	assert.NotEmpty(t, meta.Conclusion)
}

func TestSeededStoreShape(t *testing.T) {
	s := New()

	days := s.Days()
	require.Len(t, days, 5)
	for _, d := range days {
		assert.Len(t, d.Activities, 3)
	}
	assert.Equal(t, "day1", days[0].ID)
	assert.Equal(t, "02/16", days[4].Date)
}

// The end-to-end editing scenario: add, edit the new entry, delete an old one.
func TestEditingScenario(t *testing.T) {
	s := NewWithDays(testDays())

	act, ok := s.AddActivity("day1")
	require.True(t, ok)

	days := s.Days()
	require.Len(t, days[0].Activities, 3)
	assert.Equal(t, []string{"a1", "a2", act.ID}, []string{
		days[0].Activities[0].ID, days[0].Activities[1].ID, days[0].Activities[2].ID,
	})

	require.True(t, s.UpdateActivity("day1", act.ID, models.ActivityUpdate{Description: strptr("X")}))
	got, _ := s.Activity("day1", act.ID)
	assert.Equal(t, "X", got.Description)
	a1, _ := s.Activity("day1", "a1")
	assert.Equal(t, "抵達機場", a1.Description)

	require.True(t, s.DeleteActivity("day1", "a1"))
	days = s.Days()
	require.Len(t, days[0].Activities, 2)
	assert.Equal(t, "a2", days[0].Activities[0].ID)
	assert.Equal(t, act.ID, days[0].Activities[1].ID)
}
