package constants

const (
	ROLE_USER  = "user"
	ROLE_STAFF = "staff"
	ROLE_ADMIN = "admin"
)

const (
	TICKET_BOOKED    = "booked"
	TICKET_PAID      = "paid"
	TICKET_CANCELLED = "cancelled"
)

const (
	ERROR_INPUT          = "INVALID_INPUT"
	ERROR_INTERNAL_ERROR = "INTERNAL_ERROR"
	MISSING_LOGIN_INPUT  = "MISSING_LOGIN_INPUT"
	INVALID_USERNAME     = "INVALID_USERNAME"
	INVALID_PASSWORD     = "INVALID_PASSWORD"
	ACCOUNT_NOT_ACTIVE   = "ACCOUNT_NOT_ACTIVE"
	NOT_ADMIN            = "ADMIN_ONLY"
	NOT_STAFF            = "STAFF_ONLY"
	NOT_FOUND            = "NOT_FOUND"
)

// ActiveTicketStatuses are the statuses that hold a seat.
var ActiveTicketStatuses = []string{TICKET_BOOKED, TICKET_PAID}
