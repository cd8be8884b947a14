package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/Taulan23/kino-system/config"
	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

const (
	availabilityTTL = 30 * time.Second
	SeatEventsChan  = "seat_events"
)

func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		Password: config.ConfigDefault("REDIS_PASSWORD", ""),
	})
	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, running without cache: %v", err)
	}
}

func availabilityKey(showtimeId uint) string {
	return fmt.Sprintf("showtime:%d:available", showtimeId)
}

// GetCachedAvailability returns the cached free-seat count, or false when
// the cache is cold or Redis is down.
func GetCachedAvailability(ctx context.Context, showtimeId uint) (int, bool) {
	if Redis == nil {
		return 0, false
	}
	raw, err := Redis.Get(ctx, availabilityKey(showtimeId)).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return count, true
}

func SetCachedAvailability(ctx context.Context, showtimeId uint, count int) {
	if Redis == nil {
		return
	}
	Redis.Set(ctx, availabilityKey(showtimeId), count, availabilityTTL)
}

func InvalidateAvailability(ctx context.Context, showtimeId uint) {
	if Redis == nil {
		return
	}
	Redis.Del(ctx, availabilityKey(showtimeId))
}

type SeatEvent struct {
	ShowtimeId uint   `json:"showtimeId"`
	Row        int    `json:"row"`
	Seat       int    `json:"seat"`
	Action     string `json:"action"` // booked | cancelled
}

// PublishSeatEvent fans the change out to the websocket feeds.
func PublishSeatEvent(ctx context.Context, event SeatEvent) {
	if Redis == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	Redis.Publish(ctx, SeatEventsChan, payload)
}
