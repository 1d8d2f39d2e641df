package enqueue

import (
	"database/sql"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// orderingTimestamp converts a wall-clock instant into the integer recorded
// in the published_at column: seconds since epoch scaled by 10,000, i.e.
// units of 100 microseconds. It orders rows when identifiers alone are
// insufficient for a reader; it is not a display timestamp.
func orderingTimestamp(now time.Time) int64 {
	return now.UnixNano() / int64(100*time.Microsecond)
}

// deadlineFrom validates a relative duration in milliseconds and converts it
// into an absolute epoch-second deadline. Zero means "not set" and yields an
// invalid NullInt64; negative values fail validation. The sub-second
// remainder is truncated: 1500ms becomes now+1s.
func deadlineFrom(now time.Time, ms int64, field string) (sql.NullInt64, error) {
	if ms == 0 {
		return sql.NullInt64{}, nil
	}
	if err := validation.Validate(ms, validation.Min(int64(1))); err != nil {
		return sql.NullInt64{}, NewErrorWithCause(ErrCodeValidation,
			fmt.Sprintf("%s must be a positive number of milliseconds, got %d", field, ms), err)
	}
	return sql.NullInt64{Int64: now.Unix() + ms/1000, Valid: true}, nil
}
