package room

import (
	"sync"

	"github.com/sirupsen/logrus"

	"pokerdex-server/internal/util"
	"pokerdex-server/pkg/poker/action"
	"pokerdex-server/pkg/poker/texasholdem"
)

// Options configures the tables a PitBoss opens
type Options struct {
	Game           texasholdem.Options
	StartingTokens int
}

// DefaultOptions returns sane table defaults
func DefaultOptions() Options {
	return Options{
		Game:           texasholdem.DefaultOptions(),
		StartingTokens: 1000,
	}
}

// Dealer is responsible for running a single table. All engine access is
// serialized behind the dealer's mutex, so one action is in flight per table
// at any time.
type Dealer struct {
	uuid   string
	logger logrus.FieldLogger
	opts   Options

	mu      sync.Mutex
	game    *texasholdem.Game
	settled int

	clientsMu sync.RWMutex
	clients   map[*Client]bool
}

// NewDealer creates a dealer for a fresh table
func NewDealer(logger logrus.FieldLogger, uuid string, opts Options) (*Dealer, error) {
	log := logger.WithField("table", uuid)

	game, err := texasholdem.NewGame(log, opts.Game)
	if err != nil {
		return nil, err
	}

	return &Dealer{
		uuid:    uuid,
		logger:  log,
		opts:    opts,
		game:    game,
		clients: make(map[*Client]bool),
	}, nil
}

// UUID returns the table identifier
func (d *Dealer) UUID() string {
	return d.uuid
}

// State returns the table state rendered for the given viewer
func (d *Dealer) State(viewer string) *texasholdem.TableSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.game.Snapshot(viewer)
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.clientsMu.RLock()
	defer d.clientsMu.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// AddClient attaches a connection to the table and catches it up on the
// current state
func (d *Dealer) AddClient(client *Client) {
	d.clientsMu.Lock()
	client.dealer = d
	d.clients[client] = true
	d.clientsMu.Unlock()

	d.logger.WithField("client", client.String()).Debug("client connected")

	d.mu.Lock()
	client.Send(d.playersPayload())
	if d.game.Round() != texasholdem.RoundWaiting {
		client.Send(&gameStatePayload{
			Type:          "updateGameState",
			TableSnapshot: d.game.Snapshot(client.name),
		})
	}
	d.mu.Unlock()
}

// RemoveClient detaches a connection and reports whether it was the last one
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.clientsMu.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.clientsMu.Unlock()

	d.logger.WithField("client", client.String()).Debug("client disconnected")

	return nClients == 0
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Type {
	case "join":
		d.join(c, msg.Name)
	case "startGame":
		d.startGame(c)
	default:
		act, err := action.FromString(msg.Type)
		if err != nil {
			d.logger.WithField("msg", msg).Warn("unknown message")
			c.Send(newErrorPayload(err))
			return
		}

		d.submitAction(c, act, msg)
	}
}

func (d *Dealer) join(c *Client, name string) {
	if name == "" {
		name = util.GetRandomName()
	}

	d.mu.Lock()
	err := d.game.AddPlayer(name, d.opts.StartingTokens)
	d.mu.Unlock()

	if err != nil {
		c.Send(newErrorPayload(err))
		return
	}

	c.name = name
	d.logger.WithField("player", name).Info("player joined")
	d.broadcastPlayers()
}

func (d *Dealer) startGame(c *Client) {
	d.mu.Lock()
	err := d.game.StartHand()
	if err == nil {
		d.settled = 0
	}
	d.mu.Unlock()

	if err != nil {
		c.Send(newErrorPayload(err))
		return
	}

	d.broadcast(&startGamePayload{Type: "startGame"})
	d.broadcastState()
	// blinds can put everyone all-in and run the hand out immediately
	d.broadcastSettlements()
}

func (d *Dealer) submitAction(c *Client, act action.Action, msg *PayloadIn) {
	name := msg.PlayerName
	if name == "" {
		name = c.name
	}

	d.mu.Lock()
	var err error
	switch act {
	case action.Fold:
		err = d.game.Fold(name)
	case action.Check:
		err = d.game.Check(name)
	case action.Call:
		err = d.game.Call(name)
	case action.Bet:
		err = d.game.Bet(name, msg.Amount)
	case action.Raise:
		err = d.game.Raise(name, msg.Amount)
	}
	d.mu.Unlock()

	if err != nil {
		c.Send(newErrorPayload(err))
		return
	}

	d.broadcastState()
	d.broadcastSettlements()
}

func (d *Dealer) broadcast(msg interface{}) {
	for _, client := range d.Clients() {
		client.Send(msg)
	}
}

func (d *Dealer) broadcastPlayers() {
	d.mu.Lock()
	payload := d.playersPayload()
	d.mu.Unlock()

	d.broadcast(payload)
}

// NOTE: must only be called with the game mutex held
func (d *Dealer) playersPayload() *playersPayload {
	players := d.game.Players()
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name()
	}

	return &playersPayload{
		Type:    "updatePlayers",
		Players: names,
	}
}

// broadcastState sends each client a snapshot filtered for its own viewer,
// so hole cards never leak to other connections
func (d *Dealer) broadcastState() {
	clients := d.Clients()

	d.mu.Lock()
	payloads := make(map[*Client]*gameStatePayload, len(clients))
	for _, client := range clients {
		payloads[client] = &gameStatePayload{
			Type:          "updateGameState",
			TableSnapshot: d.game.Snapshot(client.name),
		}
	}
	d.mu.Unlock()

	for client, payload := range payloads {
		client.Send(payload)
	}
}

// broadcastSettlements pushes any pot settlements not yet announced, one
// message per side-pot layer
func (d *Dealer) broadcastSettlements() {
	d.mu.Lock()
	events := d.game.Settlements()
	pending := events[d.settled:]
	d.settled = len(events)
	d.mu.Unlock()

	for _, event := range pending {
		d.broadcast(&settlementPayload{
			Type:            "settlement",
			SettlementEvent: event,
		})
	}
}
