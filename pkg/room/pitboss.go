package room

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrTableNotFound is returned when a table lookup misses
var ErrTableNotFound = errors.New("table not found")

// PitBoss opens tables and dispatches clients to their dealers. Tables are
// independent of one another; the pit boss only guards the registry.
type PitBoss struct {
	logger logrus.FieldLogger
	opts   Options

	mu      sync.RWMutex
	dealers map[string]*Dealer
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(logger logrus.FieldLogger, opts Options) *PitBoss {
	return &PitBoss{
		logger:  logger,
		opts:    opts,
		dealers: make(map[string]*Dealer),
	}
}

// CreateTable opens a new table and returns its dealer
func (p *PitBoss) CreateTable() (*Dealer, error) {
	id := uuid.New().String()

	dealer, err := NewDealer(p.logger, id, p.opts)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.dealers[id] = dealer
	p.mu.Unlock()

	p.logger.WithField("table", id).Info("table created")

	return dealer, nil
}

// TableCount returns the number of open tables
func (p *PitBoss) TableCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.dealers)
}

// Dealer returns the dealer for the given table
func (p *PitBoss) Dealer(id string) (*Dealer, error) {
	p.mu.RLock()
	dealer, found := p.dealers[id]
	p.mu.RUnlock()

	if !found {
		return nil, ErrTableNotFound
	}

	return dealer, nil
}

// ClientConnected attaches a client to a table's dealer
func (p *PitBoss) ClientConnected(tableID string, client *Client) error {
	dealer, err := p.Dealer(tableID)
	if err != nil {
		return err
	}

	dealer.AddClient(client)

	return nil
}

// ClientDisconnected detaches a client. The table stays open so players can
// reconnect by UUID.
func (p *PitBoss) ClientDisconnected(client *Client) {
	if client.dealer == nil {
		return
	}

	client.dealer.RemoveClient(client)
}
