package constants

const (
	AppName            = "salat"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/salat/salat.db"
	Version            = "v0.3.0"

	// EnvConnectionString names the environment variable consulted for a
	// PostgreSQL connection string when --config is "keyring".
	EnvConnectionString = "SALAT_DB_CONNECTION"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "salat-"
	BackupFileSuffix = ".db"

	// Cache constants
	CacheDirName       = "cache"
	TimingsCacheDir    = "timings"
	TimingsCacheMaxMem = 1024 * 1024 // 1MB

	LogDirName  = "logs"
	LogFileName = "salat.log"
)
