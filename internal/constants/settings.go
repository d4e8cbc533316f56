package constants

const (
	SettingLatitude       = "latitude"
	SettingLongitude      = "longitude"
	SettingMethod         = "method"
	SettingTimezone       = "timezone"
	SettingStatsStartDate = "stats_start_date"
	SettingBarWidth       = "bar_width"

	// Default Settings Values (Bremen, Diyanet)
	DefaultLatitude       = 53.075878
	DefaultLongitude      = 8.807311
	DefaultMethod         = 13
	DefaultTimezone       = "Europe/Berlin"
	DefaultStatsStartDate = "1999-01-01"
	DefaultBarWidth       = 40

	DefaultProviderURL = "https://api.aladhan.com/v1"

	// Kaaba coordinates used for the qibla bearing
	KaabaLatitude  = 21.422487
	KaabaLongitude = 39.826206
)
