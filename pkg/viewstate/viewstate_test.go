package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditFocusLastWriteWins(t *testing.T) {
	s := NewState()
	assert.Nil(t, s.Editing)

	s.StartEdit("day1", "a1")
	assert.True(t, s.IsEditing("day1", "a1"))

	// selecting another activity implicitly finishes the first edit
	s.StartEdit("day2", "b1")
	assert.False(t, s.IsEditing("day1", "a1"))
	assert.True(t, s.IsEditing("day2", "b1"))

	s.FinishEdit()
	assert.Nil(t, s.Editing)
	assert.False(t, s.IsEditing("day2", "b1"))
}

func TestTipModalOneAtATime(t *testing.T) {
	s := NewState()
	assert.Equal(t, -1, s.ActiveTip)

	s.OpenTip(2)
	assert.Equal(t, 2, s.ActiveTip)

	s.OpenTip(0)
	assert.Equal(t, 0, s.ActiveTip)

	s.CloseTip()
	assert.Equal(t, -1, s.ActiveTip)

	s.OpenTip(-5)
	assert.Equal(t, -1, s.ActiveTip)
}

func TestConclusionIndependentOfOtherState(t *testing.T) {
	s := NewState()

	s.StartEdit("day1", "a1")
	s.OpenTip(1)
	s.RevealConclusion()
	assert.True(t, s.ShowConclusion)
	assert.True(t, s.IsEditing("day1", "a1"))
	assert.Equal(t, 1, s.ActiveTip)

	s.DismissConclusion()
	assert.False(t, s.ShowConclusion)
	assert.True(t, s.IsEditing("day1", "a1"))
	assert.Equal(t, 1, s.ActiveTip)
}

func TestCurrencyInputStoredRaw(t *testing.T) {
	s := NewState()
	assert.Equal(t, "", s.CurrencyInput)

	s.SetCurrencyInput(" 100 ")
	assert.Equal(t, " 100 ", s.CurrencyInput)

	s.SetCurrencyInput("abc")
	assert.Equal(t, "abc", s.CurrencyInput)
}
