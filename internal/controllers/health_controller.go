package controllers

import (
	"drinkdays/internal/services"
	"fmt"
	"net/http"
	"time"
)

type HealthController struct {
	service   services.JournalServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Records       int     `json:"records"`
	ReadOnly      bool    `json:"read_only"`
}

// Health reports "degraded" while the journal refuses writes.
func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Records:       hc.service.Len(),
		ReadOnly:      hc.service.ReadOnly(),
	}
	if resp.ReadOnly {
		resp.Status = "degraded"
	}
	writeJSON(w, http.StatusOK, resp)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(service services.JournalServiceInterface) *HealthController {
	return &HealthController{
		service:   service,
		startTime: time.Now(),
	}
}
