package booking

import (
	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/model"
	"gorm.io/gorm"
)

type SeatCell struct {
	Row      int           `json:"row"`
	Seat     int           `json:"seat"`
	Occupied bool          `json:"occupied"`
	Ticket   *model.Ticket `json:"ticket,omitempty"`
}

type SeatMap struct {
	Rows      [][]SeatCell `json:"rows"`
	Total     int          `json:"total"`
	Available int          `json:"available"`
}

type seatKey struct {
	row  int
	seat int
}

// BuildSeatMap lays out the hall grid with the occupancy of every seat.
// With includeTickets set, each occupied cell carries the active ticket
// and its owner, which the staff view needs.
func BuildSeatMap(db *gorm.DB, showtime *model.ShowTime, includeTickets bool) (*SeatMap, error) {
	query := db.Where("showtime_id = ? AND status IN ?", showtime.ID, constants.ActiveTicketStatuses)
	if includeTickets {
		query = query.Preload("User")
	}
	var tickets []model.Ticket
	if err := query.Find(&tickets).Error; err != nil {
		return nil, err
	}

	taken := make(map[seatKey]*model.Ticket, len(tickets))
	for i := range tickets {
		taken[seatKey{tickets[i].Row, tickets[i].Seat}] = &tickets[i]
	}

	hall := &showtime.Hall
	seatMap := &SeatMap{
		Rows:  make([][]SeatCell, hall.Rows),
		Total: hall.TotalSeats(),
	}
	for r := 1; r <= hall.Rows; r++ {
		cells := make([]SeatCell, hall.SeatsPerRow)
		for s := 1; s <= hall.SeatsPerRow; s++ {
			cell := SeatCell{Row: r, Seat: s}
			if ticket, ok := taken[seatKey{r, s}]; ok {
				cell.Occupied = true
				if includeTickets {
					cell.Ticket = ticket
				}
			} else {
				seatMap.Available++
			}
			cells[s-1] = cell
		}
		seatMap.Rows[r-1] = cells
	}
	return seatMap, nil
}
