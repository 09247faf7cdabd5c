package handler

import (
	"github.com/Benjafo/TimeClock/internal/service"
	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	entrySvc *service.TimeEntryService
}

func NewEntryHandler(entrySvc *service.TimeEntryService) *EntryHandler {
	return &EntryHandler{entrySvc: entrySvc}
}

// Delete removes one time entry. The bot offers no delete command; stray
// entries are cleaned up here.
func (h *EntryHandler) Delete(c *gin.Context) {
	if err := h.entrySvc.Delete(parseID(c.Param("id"))); err != nil {
		respondServiceError(c, err)
		return
	}
	Success(c, nil)
}
