// Package viewstate tracks what a single browser is currently looking at:
// which activity is in inline-edit mode, which tip modal is open, whether
// the closing message is shown, and the raw text of the currency input.
// The three pieces are independent; none of them touches trip data.
package viewstate

// EditFocus identifies the one activity in edit mode, if any.
type EditFocus struct {
	DayID      string `json:"dayId"`
	ActivityID string `json:"activityId"`
}

// State is the full view state for one session. The zero value is the
// initial state: nothing in edit mode, no modals, empty converter input.
type State struct {
	// Editing is nil when no activity is in edit mode.
	Editing *EditFocus `json:"editing,omitempty"`
	// ActiveTip is the index into the tip list, or -1 for none.
	ActiveTip int `json:"activeTip"`
	// ShowConclusion reports whether the closing-message modal is visible.
	ShowConclusion bool `json:"showConclusion"`
	// CurrencyInput is the raw converter text exactly as typed.
	CurrencyInput string `json:"currencyInput"`
}

// NewState returns the initial view state.
func NewState() State {
	return State{ActiveTip: -1}
}

// StartEdit moves edit focus to the given activity. Selecting a different
// activity while one is already in edit mode implicitly finishes the prior
// edit; there is no uncommitted buffer to lose, every keystroke has already
// gone through the store.
func (s *State) StartEdit(dayID, activityID string) {
	s.Editing = &EditFocus{DayID: dayID, ActivityID: activityID}
}

// FinishEdit leaves edit mode.
func (s *State) FinishEdit() {
	s.Editing = nil
}

// IsEditing reports whether the given activity holds edit focus.
func (s *State) IsEditing(dayID, activityID string) bool {
	return s.Editing != nil && s.Editing.DayID == dayID && s.Editing.ActivityID == activityID
}

// OpenTip shows the tip modal for the given index. At most one tip is
// visible; opening another replaces it.
func (s *State) OpenTip(index int) {
	if index < 0 {
		index = -1
	}
	s.ActiveTip = index
}

// CloseTip dismisses the tip modal.
func (s *State) CloseTip() {
	s.ActiveTip = -1
}

// RevealConclusion shows the closing-message modal.
func (s *State) RevealConclusion() {
	s.ShowConclusion = true
}

// DismissConclusion hides the closing-message modal.
func (s *State) DismissConclusion() {
	s.ShowConclusion = false
}

// SetCurrencyInput stores the raw converter text. The derived display
// amount is computed on the way out, never stored.
func (s *State) SetCurrencyInput(raw string) {
	s.CurrencyInput = raw
}
