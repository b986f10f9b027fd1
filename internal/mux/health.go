package mux

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
	Tables  int    `json:"tables"`
}

func (m *Mux) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:  "OK",
			Version: m.version,
			Uptime:  time.Since(m.started).Round(time.Second).String(),
			Tables:  m.pitBoss.TableCount(),
		})
	}
}
