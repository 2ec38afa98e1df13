package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// calendarHandler handles HTTP requests for the shared calendar.
type calendarHandler struct {
	calendarService portssvc.CalendarSvcFacade
}

func newCalendarHandler(cs portssvc.CalendarSvcFacade) *calendarHandler {
	return &calendarHandler{calendarService: cs}
}

// registerCalendarRoutes registers routes related to calendar events.
func registerCalendarRoutes(rg *gin.RouterGroup, calendarService portssvc.CalendarSvcFacade) {
	h := newCalendarHandler(calendarService)

	events := rg.Group("/events")
	{
		events.GET("", h.listEvents)
		events.POST("", h.createEvent)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
		events.POST("/:id/restore", h.restoreEvent)
		events.DELETE("/:id/purge", h.purgeEvent)
	}
}

// listEvents godoc
// @Summary List calendar events
// @Tags events
// @Produce json
// @Success 200 {object} dto.CalendarEventListResponse
// @Security BearerAuth
// @Router /events [get]
func (h *calendarHandler) listEvents(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	events, err := h.calendarService.ListEvents(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "list events")
		return
	}
	c.JSON(http.StatusOK, dto.CalendarEventListResponse{Events: events})
}

// getEvent godoc
// @Summary Get a calendar event by id
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.CalendarEvent
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *calendarHandler) getEvent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	event, err := h.calendarService.GetEventByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// createEvent godoc
// @Summary Create a calendar event
// @Description The organizer is the authenticated caller
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateCalendarEventRequest true "Event details"
// @Success 201 {object} domain.CalendarEvent
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /events [post]
func (h *calendarHandler) createEvent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateCalendarEventRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := h.calendarService.CreateEvent(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "create event")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// updateEvent godoc
// @Summary Update a calendar event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body dto.UpdateCalendarEventRequest true "Fields to update"
// @Success 200 {object} domain.CalendarEvent
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *calendarHandler) updateEvent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateCalendarEventRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := h.calendarService.UpdateEvent(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "update event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// deleteEvent godoc
// @Summary Soft-delete a calendar event
// @Tags events
// @Param id path string true "Event ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *calendarHandler) deleteEvent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.calendarService.DeleteEvent(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "delete event")
		return
	}
	c.Status(http.StatusNoContent)
}

// restoreEvent godoc
// @Summary Restore a soft-deleted calendar event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.CalendarEvent
// @Security BearerAuth
// @Router /events/{id}/restore [post]
func (h *calendarHandler) restoreEvent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	event, err := h.calendarService.RestoreEvent(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "restore event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// purgeEvent godoc
// @Summary Permanently delete a calendar event
// @Description Irreversibly removes the event. Admin only.
// @Tags events
// @Param id path string true "Event ID"
// @Success 204 "Purged"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /events/{id}/purge [delete]
func (h *calendarHandler) purgeEvent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.calendarService.PurgeEvent(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "purge event")
		return
	}
	c.Status(http.StatusNoContent)
}
