package adapthttp

import "net/http"

// handleStreaks returns the current streak per habit. The evaluation date
// defaults to the server's today and can be overridden with ?date=.
func (s *Server) handleStreaks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)
	today := dateQuery(r, "date")

	results, err := s.streaks.Current(r.Context(), user.ID, today)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"today": dayString(today),
		"items": results,
	})
}
