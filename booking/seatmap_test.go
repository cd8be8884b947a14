package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeatMap(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(3*time.Hour))
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := BookSeat(db, showtime, alice.ID, 1, 1)
	require.NoError(t, err)
	cancelled, err := BookSeat(db, showtime, bob.ID, 2, 2)
	require.NoError(t, err)
	cancelled.Showtime = *showtime
	require.NoError(t, CancelTicket(db, cancelled, false))

	seatMap, err := BuildSeatMap(db, showtime, false)
	require.NoError(t, err)

	assert.Len(t, seatMap.Rows, 5)
	assert.Len(t, seatMap.Rows[0], 8)
	assert.Equal(t, 40, seatMap.Total)
	assert.Equal(t, 39, seatMap.Available)

	assert.True(t, seatMap.Rows[0][0].Occupied)
	assert.Nil(t, seatMap.Rows[0][0].Ticket)
	// cancelled seat shows as free again
	assert.False(t, seatMap.Rows[1][1].Occupied)
}

func TestBuildSeatMapWithTickets(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(3*time.Hour))
	alice := createUser(t, db, "alice")

	_, err := BookSeat(db, showtime, alice.ID, 3, 4)
	require.NoError(t, err)

	seatMap, err := BuildSeatMap(db, showtime, true)
	require.NoError(t, err)

	cell := seatMap.Rows[2][3]
	require.True(t, cell.Occupied)
	require.NotNil(t, cell.Ticket)
	assert.Equal(t, alice.ID, cell.Ticket.UserId)
	assert.Equal(t, "alice", cell.Ticket.User.Username)
}
