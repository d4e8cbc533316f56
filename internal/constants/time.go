package constants

import "time"

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// ProviderDateFormat is the date format the timing provider expects in its URL path
	ProviderDateFormat = "02-01-2006"

	SecondsPerDay    = 86400
	SecondsPerHour   = 3600
	SecondsPerMinute = 60

	TickInterval    = time.Second
	ProviderTimeout = 10 * time.Second
)
