package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"pokerdex-server/pkg/room"
)

type tableResponse struct {
	UUID string `json:"uuid"`
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer, err := m.pitBoss.CreateTable()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, tableResponse{UUID: dealer.UUID()})
	}
}

// tableMiddleware resolves the {uuid} path segment into a dealer
func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dealer, err := m.pitBoss.Dealer(gmux.Vars(r)["uuid"])
		if err != nil {
			if err == room.ErrTableNotFound {
				writeJSONError(w, http.StatusNotFound, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withDealer(r.Context(), dealer)))
	})
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := dealerFromContext(r.Context())

		// unauthenticated observers get the spectator view
		writeJSON(w, http.StatusOK, dealer.State(""))
	}
}
