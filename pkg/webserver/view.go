package webserver

import (
	"encoding/json"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/esyang202423/tripboard/pkg/utils"
	"github.com/esyang202423/tripboard/pkg/viewstate"
)

const viewStateKey = "view_state"

// loadViewState reads the session's view state, falling back to the
// initial state for new or corrupted sessions.
func (s *Server) loadViewState(c *gin.Context) viewstate.State {
	session := sessions.Default(c)

	raw, ok := session.Get(viewStateKey).(string)
	if !ok || raw == "" {
		return viewstate.NewState()
	}

	var state viewstate.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return viewstate.NewState()
	}
	return state
}

// saveViewState writes the view state back onto the session cookie.
func (s *Server) saveViewState(c *gin.Context, state viewstate.State) {
	raw, err := json.Marshal(state)
	if err != nil {
		s.logger.WithError(err).Error("Failed to encode view state")
		return
	}

	session := sessions.Default(c)
	session.Set(viewStateKey, string(raw))
	if err := session.Save(); err != nil {
		s.logger.WithError(err).Error("Failed to save session")
	}
}

// viewStateResponse decorates the raw state with derived display values.
func (s *Server) viewStateResponse(state viewstate.State) gin.H {
	resp := gin.H{
		"editing":         state.Editing,
		"activeTip":       state.ActiveTip,
		"showConclusion":  state.ShowConclusion,
		"currencyInput":   state.CurrencyInput,
		"currencyDisplay": s.converter.Display(state.CurrencyInput),
	}

	tips := s.store.Tips()
	if state.ActiveTip >= 0 && state.ActiveTip < len(tips) {
		resp["tip"] = tips[state.ActiveTip]
	}

	return resp
}

// getViewState returns the session's current view state
func (s *Server) getViewState(c *gin.Context) {
	state := s.loadViewState(c)
	c.JSON(http.StatusOK, utils.NewSuccessResponse(s.viewStateResponse(state), "View state retrieved successfully"))
}

// StartEditRequest names the activity taking edit focus
type StartEditRequest struct {
	DayID      string `json:"dayId" binding:"required"`
	ActivityID string `json:"activityId" binding:"required"`
}

// startEdit moves edit focus onto one activity. Focus moving off an
// activity that was already in edit mode is implicit: last write wins.
func (s *Server) startEdit(c *gin.Context) {
	var req StartEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	if _, ok := s.store.Activity(req.DayID, req.ActivityID); !ok {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Activity not found"))
		return
	}

	state := s.loadViewState(c)
	state.StartEdit(req.DayID, req.ActivityID)
	s.saveViewState(c, state)

	c.JSON(http.StatusOK, utils.NewSuccessResponse(s.viewStateResponse(state), "Edit focus set"))
}

// finishEdit leaves edit mode
func (s *Server) finishEdit(c *gin.Context) {
	state := s.loadViewState(c)
	state.FinishEdit()
	s.saveViewState(c, state)

	c.JSON(http.StatusOK, utils.NewSuccessResponse(s.viewStateResponse(state), "Edit focus cleared"))
}

// OpenTipRequest selects a tip card by index
type OpenTipRequest struct {
	Index *int `json:"index" binding:"required"`
}

// openTip shows one tip modal, replacing any tip already open
func (s *Server) openTip(c *gin.Context) {
	var req OpenTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	if *req.Index < 0 || *req.Index >= len(s.store.Tips()) {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Tip not found"))
		return
	}

	state := s.loadViewState(c)
	state.OpenTip(*req.Index)
	s.saveViewState(c, state)

	c.JSON(http.StatusOK, utils.NewSuccessResponse(s.viewStateResponse(state), "Tip opened"))
}

// closeTip dismisses the tip modal
func (s *Server) closeTip(c *gin.Context) {
	state := s.loadViewState(c)
	state.CloseTip()
	s.saveViewState(c, state)

	c.JSON(http.StatusOK, utils.NewSuccessResponse(s.viewStateResponse(state), "Tip closed"))
}

// revealConclusion shows the closing-message modal
func (s *Server) revealConclusion(c *gin.Context) {
	state := s.loadViewState(c)
	state.RevealConclusion()
	s.saveViewState(c, state)

	c.JSON(http.StatusOK, utils.NewSuccessResponse(s.viewStateResponse(state), "Conclusion revealed"))
}

// dismissConclusion hides the closing-message modal
func (s *Server) dismissConclusion(c *gin.Context) {
	state := s.loadViewState(c)
	state.DismissConclusion()
	s.saveViewState(c, state)

	c.JSON(http.StatusOK, utils.NewSuccessResponse(s.viewStateResponse(state), "Conclusion dismissed"))
}

// CurrencyInputRequest carries the raw converter text as typed
type CurrencyInputRequest struct {
	Amount string `json:"amount"`
}

// setCurrencyInput stores the raw input and returns the derived display
func (s *Server) setCurrencyInput(c *gin.Context) {
	var req CurrencyInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	state := s.loadViewState(c)
	state.SetCurrencyInput(req.Amount)
	s.saveViewState(c, state)

	c.JSON(http.StatusOK, utils.NewSuccessResponse(gin.H{
		"amount":  req.Amount,
		"display": s.converter.Display(req.Amount),
		"rate":    s.converter.Rate(),
	}, "Currency input stored"))
}

// convert is the stateless conversion display
func (s *Server) convert(c *gin.Context) {
	amount := c.Query("amount")

	c.JSON(http.StatusOK, utils.NewSuccessResponse(gin.H{
		"amount":  amount,
		"display": s.converter.Display(amount),
		"rate":    s.converter.Rate(),
	}, "Conversion computed"))
}
