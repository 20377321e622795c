package post

import "time"

// DateLayout is the YYYY-MM-DD layout used for post dates and filenames.
const DateLayout = "2006-01-02"

// ResolveDate returns date unchanged, or now formatted as YYYY-MM-DD when
// date is blank. User-supplied dates are not validated.
func ResolveDate(date string, now time.Time) string {
	if date == "" {
		return now.Format(DateLayout)
	}
	return date
}
