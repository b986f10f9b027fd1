package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitBoss_tables(t *testing.T) {
	a := assert.New(t)

	pitBoss := NewPitBoss(testLogger(), testOptions())

	dealer, err := pitBoss.CreateTable()
	require.NoError(t, err)
	a.NotEmpty(dealer.UUID())

	found, err := pitBoss.Dealer(dealer.UUID())
	a.NoError(err)
	a.Equal(dealer, found)

	_, err = pitBoss.Dealer("no-such-table")
	a.Equal(ErrTableNotFound, err)

	other, err := pitBoss.CreateTable()
	require.NoError(t, err)
	a.NotEqual(dealer.UUID(), other.UUID())
	a.Equal(2, pitBoss.TableCount())
}

func TestPitBoss_clientDispatch(t *testing.T) {
	a := assert.New(t)

	pitBoss := NewPitBoss(testLogger(), testOptions())
	dealer, err := pitBoss.CreateTable()
	require.NoError(t, err)

	client := NewClient(nil)
	a.Equal(ErrTableNotFound, pitBoss.ClientConnected("no-such-table", client))
	a.NoError(pitBoss.ClientConnected(dealer.UUID(), client))
	a.Equal(1, len(dealer.Clients()))

	pitBoss.ClientDisconnected(client)
	a.Equal(0, len(dealer.Clients()))

	// disconnecting an unattached client is a no-op
	pitBoss.ClientDisconnected(NewClient(nil))
}
