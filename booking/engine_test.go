package booking

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createShowtime(t *testing.T, db *gorm.DB, start time.Time) *model.ShowTime {
	t.Helper()
	city := model.City{Name: "Moscow", IsActive: true}
	require.NoError(t, db.Create(&city).Error)
	movie := model.Movie{Title: "Interstellar", Slug: "interstellar", Duration: 169, IsActive: true}
	require.NoError(t, db.Create(&movie).Error)
	cinema := model.Cinema{Name: "Kino Center", CityId: city.ID, IsActive: true}
	require.NoError(t, db.Create(&cinema).Error)
	hall := model.Hall{CinemaId: cinema.ID, Name: "Hall 1", Rows: 5, SeatsPerRow: 8}
	require.NoError(t, db.Create(&hall).Error)

	showtime := model.ShowTime{MovieId: movie.ID, HallId: hall.ID, StartTime: start, Price: 450, IsActive: true}
	require.NoError(t, db.Create(&showtime).Error)
	showtime.Hall = hall
	return &showtime
}

func createUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{Username: username, Email: username + "@example.com", Password: "x", Role: constants.ROLE_USER, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestBookSeatReducesAvailability(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(3*time.Hour))
	user := createUser(t, db, "alice")

	count, err := AvailableSeatCount(db, showtime)
	require.NoError(t, err)
	assert.Equal(t, 40, count)

	ticket, err := BookSeat(db, showtime, user.ID, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, constants.TICKET_PAID, ticket.Status)
	assert.Equal(t, showtime.Price, ticket.Price)

	count, err = AvailableSeatCount(db, showtime)
	require.NoError(t, err)
	assert.Equal(t, 39, count)

	free, err := IsSeatAvailable(db, showtime.ID, 2, 3)
	require.NoError(t, err)
	assert.False(t, free)
}

func TestBookSeatPriceSnapshot(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(3*time.Hour))
	user := createUser(t, db, "alice")

	ticket, err := BookSeat(db, showtime, user.ID, 1, 1)
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.ShowTime{}).Where("id = ?", showtime.ID).Update("price", 700).Error)

	var stored model.Ticket
	require.NoError(t, db.First(&stored, ticket.ID).Error)
	assert.Equal(t, 450.0, stored.Price)
}

func TestBookSeatTaken(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(3*time.Hour))
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := BookSeat(db, showtime, alice.ID, 1, 1)
	require.NoError(t, err)

	_, err = BookSeat(db, showtime, bob.ID, 1, 1)
	assert.ErrorIs(t, err, ErrSeatUnavailable)

	// another seat in the same row is still free
	_, err = BookSeat(db, showtime, bob.ID, 1, 2)
	assert.NoError(t, err)
}

func TestBookSeatExpiredShowtime(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(-10*time.Minute))
	user := createUser(t, db, "alice")

	_, err := BookSeat(db, showtime, user.ID, 1, 1)
	assert.ErrorIs(t, err, ErrShowtimeExpired)
}

func TestBookSeatExpiredBeforeSeatCheck(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(2*time.Hour))
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := BookSeat(db, showtime, alice.ID, 1, 1)
	require.NoError(t, err)

	// past the start the expiry error wins even for a taken seat
	require.NoError(t, db.Model(&model.ShowTime{}).Where("id = ?", showtime.ID).
		Update("start_time", time.Now().Add(-time.Minute)).Error)
	showtime.StartTime = time.Now().Add(-time.Minute)

	_, err = BookSeat(db, showtime, bob.ID, 1, 1)
	assert.ErrorIs(t, err, ErrShowtimeExpired)
}

func TestActiveSeatIndexBlocksDuplicates(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(3*time.Hour))
	user := createUser(t, db, "alice")

	first := model.Ticket{Code: uuid.NewString(), ShowtimeId: showtime.ID, UserId: user.ID, Row: 4, Seat: 4,
		Price: showtime.Price, Status: constants.TICKET_PAID, BookingDate: time.Now()}
	require.NoError(t, db.Create(&first).Error)

	// a second active ticket for the same seat violates the partial index
	// even when it skips the availability check
	dup := model.Ticket{Code: uuid.NewString(), ShowtimeId: showtime.ID, UserId: user.ID, Row: 4, Seat: 4,
		Price: showtime.Price, Status: constants.TICKET_BOOKED, BookingDate: time.Now()}
	err := db.Create(&dup).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestConcurrentBookingSingleWinner(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(3*time.Hour))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	const workers = 4
	users := make([]*model.User, workers)
	for i := range users {
		users[i] = createUser(t, db, fmt.Sprintf("racer%d", i))
	}

	errs := make([]error, workers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = BookSeat(db, showtime, users[i].ID, 2, 7)
		}(i)
	}
	close(start)
	wg.Wait()

	success, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			success++
		case errors.Is(err, ErrSeatUnavailable):
			conflicts++
		default:
			t.Fatalf("unexpected booking error: %v", err)
		}
	}
	assert.Equal(t, 1, success)
	assert.Equal(t, workers-1, conflicts)

	count, err := AvailableSeatCount(db, showtime)
	require.NoError(t, err)
	assert.Equal(t, 39, count)
}

func TestCancelFreesSeat(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(3*time.Hour))
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	ticket, err := BookSeat(db, showtime, alice.ID, 2, 2)
	require.NoError(t, err)
	ticket.Showtime = *showtime

	require.NoError(t, CancelTicket(db, ticket, false))

	free, err := IsSeatAvailable(db, showtime.ID, 2, 2)
	require.NoError(t, err)
	assert.True(t, free)

	count, err := AvailableSeatCount(db, showtime)
	require.NoError(t, err)
	assert.Equal(t, 40, count)

	// cancelled tickets do not block rebooking under the partial index
	_, err = BookSeat(db, showtime, bob.ID, 2, 2)
	assert.NoError(t, err)
}

func TestCancelTooLate(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(30*time.Minute))
	user := createUser(t, db, "alice")

	ticket, err := BookSeat(db, showtime, user.ID, 3, 3)
	require.NoError(t, err)
	ticket.Showtime = *showtime

	err = CancelTicket(db, ticket, false)
	assert.ErrorIs(t, err, ErrTooLateToCancel)

	var stored model.Ticket
	require.NoError(t, db.First(&stored, ticket.ID).Error)
	assert.Equal(t, constants.TICKET_PAID, stored.Status)
}

func TestCancelAdminBypassesWindow(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(30*time.Minute))
	user := createUser(t, db, "alice")

	ticket, err := BookSeat(db, showtime, user.ID, 3, 3)
	require.NoError(t, err)
	ticket.Showtime = *showtime

	require.NoError(t, CancelTicket(db, ticket, true))

	var stored model.Ticket
	require.NoError(t, db.First(&stored, ticket.ID).Error)
	assert.Equal(t, constants.TICKET_CANCELLED, stored.Status)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	db := setupTestDB(t)
	showtime := createShowtime(t, db, time.Now().Add(3*time.Hour))
	user := createUser(t, db, "alice")

	ticket, err := BookSeat(db, showtime, user.ID, 1, 5)
	require.NoError(t, err)
	ticket.Showtime = *showtime
	require.NoError(t, CancelTicket(db, ticket, false))

	ticket.Status = constants.TICKET_CANCELLED
	err = CancelTicket(db, ticket, false)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	err = CancelTicket(db, ticket, true)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}
