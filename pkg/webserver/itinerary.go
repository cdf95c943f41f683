package webserver

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/esyang202423/tripboard/pkg/models"
	"github.com/esyang202423/tripboard/pkg/queue"
	"github.com/esyang202423/tripboard/pkg/utils"
)

// getTrip returns the full day snapshot
func (s *Server) getTrip(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse(s.store.Days(), "Trip retrieved successfully"))
}

// getTripMeta returns the hero and closing content
func (s *Server) getTripMeta(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse(s.store.Meta(), "Trip meta retrieved successfully"))
}

// getDay returns a single day by id
func (s *Server) getDay(c *gin.Context) {
	day, ok := s.store.Day(c.Param("dayId"))
	if !ok {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Day not found"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(day, "Day retrieved successfully"))
}

// getTips returns the static tip cards
func (s *Server) getTips(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse(s.store.Tips(), "Tips retrieved successfully"))
}

// addActivity appends a placeholder activity to a day and moves the
// session's edit focus onto it, so the client lands straight in the editor.
func (s *Server) addActivity(c *gin.Context) {
	dayID := c.Param("dayId")

	act, ok := s.store.AddActivity(dayID)
	s.logger.LogItinerary(dayID, act.ID, "add", ok)
	if !ok {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Day not found"))
		return
	}

	state := s.loadViewState(c)
	state.StartEdit(dayID, act.ID)
	s.saveViewState(c, state)

	c.JSON(http.StatusCreated, utils.NewSuccessResponse(act, "Activity created successfully"))
}

// updateActivity applies a partial field update to one activity
func (s *Server) updateActivity(c *gin.Context) {
	dayID := c.Param("dayId")
	activityID := c.Param("activityId")

	var upd models.ActivityUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	// Sanitize supplied slots only; image payloads are data URIs and pass through
	s.validator.SanitizeUpdate(upd.Time, upd.Description, upd.Notes, upd.LocationURL)

	ok := s.store.UpdateActivity(dayID, activityID, upd)
	s.logger.LogItinerary(dayID, activityID, "update", ok)
	if !ok {
		// The store treats this as a silent no-op; a remote client holding a
		// stale id still deserves to know.
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Activity not found"))
		return
	}

	act, _ := s.store.Activity(dayID, activityID)
	c.JSON(http.StatusOK, utils.NewSuccessResponse(act, "Activity updated successfully"))
}

// deleteActivity removes one activity. The destructive-action confirmation
// lives here: without an explicit confirm flag the store is never invoked.
func (s *Server) deleteActivity(c *gin.Context) {
	dayID := c.Param("dayId")
	activityID := c.Param("activityId")

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusPreconditionRequired, utils.NewErrorResponse("Deletion requires confirm=true"))
		return
	}

	ok := s.store.DeleteActivity(dayID, activityID)
	s.logger.LogItinerary(dayID, activityID, "delete", ok)
	if !ok {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Activity not found"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(nil, "Activity deleted successfully"))
}

// attachPhoto accepts a single image file and hands it to the ingest
// workers. The upload is applied asynchronously through the normal
// update path; a request without a file is skipped, not an error.
func (s *Server) attachPhoto(c *gin.Context) {
	dayID := c.Param("dayId")
	activityID := c.Param("activityId")

	if _, ok := s.store.Activity(dayID, activityID); !ok {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Activity not found"))
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		// No file supplied: the operation is skipped entirely
		c.Status(http.StatusNoContent)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.WithError(err).Error("Failed to open uploaded photo")
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Unreadable upload"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.WithError(err).Error("Failed to read uploaded photo")
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Unreadable upload"))
		return
	}

	if !s.ingest.Enqueue(queue.Job{
		DayID:      dayID,
		ActivityID: activityID,
		Filename:   fileHeader.Filename,
		Data:       data,
	}) {
		c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse("Ingest queue full, try again"))
		return
	}

	c.JSON(http.StatusAccepted, utils.NewSuccessResponse(gin.H{
		"dayId":      dayID,
		"activityId": activityID,
		"filename":   fileHeader.Filename,
	}, "Photo queued for ingest"))
}
