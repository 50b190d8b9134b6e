package services

import "time"

// EntryDateFormat is the contractual rendering of every date-bearing
// response field, e.g. "Thu Jan 01 1970".
const EntryDateFormat = "Mon Jan 02 2006"

func FormatEntryDate(value time.Time) string {
	return value.Format(EntryDateFormat)
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}
