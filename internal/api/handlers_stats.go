package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleNotionStats(w http.ResponseWriter, r *http.Request) {
	if s.client == nil || s.client.Stats == nil {
		jsonError(w, "notion stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"database_id": s.client.DatabaseID(),
		"stats":       s.client.Stats.Snapshot(),
	})
}
