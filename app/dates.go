package app

import (
	"strings"
	"time"

	"github.com/YoRyan/operdate-getbus/core/model"
)

// ResolveDate turns a command argument into a calendar date in loc. An empty
// argument or "today" means now's date; "tomorrow" the next; anything else
// must be an M/D/YYYY date.
func ResolveDate(arg string, loc *time.Location, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "today":
		return now.In(loc), nil
	case "tomorrow":
		return now.In(loc).AddDate(0, 0, 1), nil
	}
	return model.ParseDate(arg, loc)
}
