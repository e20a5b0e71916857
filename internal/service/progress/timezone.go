package progress

import "time"

// ParseTimezone parses an IANA timezone name, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
