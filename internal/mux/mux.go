package mux

import (
	"context"
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"

	"pokerdex-server/pkg/room"
)

type ctxKey int

const ctxDealerKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	started time.Time
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		started: time.Now(),
		pitBoss: pitBoss,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.tableMiddleware)

	tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())

	return this
}

func withDealer(ctx context.Context, dealer *room.Dealer) context.Context {
	return context.WithValue(ctx, ctxDealerKey, dealer)
}

func dealerFromContext(ctx context.Context) *room.Dealer {
	return ctx.Value(ctxDealerKey).(*room.Dealer)
}
