package forecast

import (
	"errors"
	"fmt"
	"time"

	"meteocli/models"
)

// ErrMissingField is matched by every *MissingFieldError
var ErrMissingField = errors.New("missing forecast field")

// MissingFieldError reports a requested value that an entry does not carry
type MissingFieldError struct {
	Field string
	Time  time.Time
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("forecast entry %s has no %q value", e.Time.Format("2006-01-02T15:04"), e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// Extract looks up each named value of entry. A name the entry does not
// carry is reported as a *MissingFieldError; no default is substituted.
func Extract(entry models.ForecastEntry, names []string) (map[string]models.MeasuredValue, error) {
	values := make(map[string]models.MeasuredValue, len(names))
	for _, name := range names {
		v, ok := entry.Values[name]
		if !ok {
			return nil, &MissingFieldError{Field: name, Time: entry.Time}
		}
		values[name] = v
	}
	return values, nil
}
