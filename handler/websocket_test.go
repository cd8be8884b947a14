package handler_test

import (
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/Taulan23/kino-system/booking"
	"github.com/fasthttp/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatFeedDeliversInitialSeatMap(t *testing.T) {
	f := setup(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go f.app.Listener(ln)
	defer f.app.Shutdown()

	url := fmt.Sprintf("ws://%s/api/v1/showtime/%d/feed", ln.Addr().String(), f.showtime.ID)
	var conn *websocket.Conn
	for i := 0; i < 50; i++ {
		conn, _, err = websocket.DefaultDialer.Dial(url, nil)
		if err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	require.NoError(t, err, "websocket dial failed")
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var seatMap booking.SeatMap
	require.NoError(t, conn.ReadJSON(&seatMap))
	assert.Equal(t, 60, seatMap.Total)
	assert.Equal(t, 60, seatMap.Available)
	assert.Len(t, seatMap.Rows, 6)
}
