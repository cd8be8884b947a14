package handler

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Taulan23/kino-system/booking"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/helper"
	"github.com/Taulan23/kino-system/model"
	"github.com/gofiber/contrib/websocket"
)

// SeatFeed streams seat updates for one showtime. The client gets the
// current seat map on connect and a SeatEvent for every later change.
// Each connection holds its own subscription and is written to only
// from this goroutine.
func SeatFeed(c *websocket.Conn) {
	defer c.Close()

	id64, err := strconv.ParseUint(c.Params("showtimeId"), 10, 64)
	if err != nil {
		return
	}
	showtimeId := uint(id64)

	var showtime model.ShowTime
	if err := database.DB.Preload("Hall").First(&showtime, showtimeId).Error; err != nil {
		return
	}
	seatMap, err := booking.BuildSeatMap(database.DB, &showtime, false)
	if err != nil {
		return
	}
	if err := c.WriteJSON(seatMap); err != nil {
		return
	}

	if helper.Redis == nil {
		// no broker, hold the socket open until the client leaves
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}

	pubsub := helper.Redis.Subscribe(context.Background(), helper.SeatEventsChan)
	defer pubsub.Close()

	// closing the subscription unblocks the send loop when the client
	// goes away
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				pubsub.Close()
				return
			}
		}
	}()

	for msg := range pubsub.Channel() {
		var event helper.SeatEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			continue
		}
		if event.ShowtimeId != showtimeId {
			continue
		}
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}
