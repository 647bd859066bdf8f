package constants

const (
	AppName            = "checkin"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/checkin"
	DefaultConfigPath  = "~/.config/checkin/checkin.db"
	ConfigFileName     = "config.yaml"
	Version            = "v0.3.0"

	// DateFormat is the record date format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is the record time-of-day format (HH:MM:SS)
	ClockFormat = "15:04:05"

	// MonthFormat is the format accepted by --month (YYYY-MM)
	MonthFormat = "2006-01"

	// Storage keys, one blob per habit
	ParkingStorageKey = "parkingRecords"
	WaterStorageKey   = "waterRecords"

	// Calendar layout: 6 rows x 7 columns
	CalendarRows  = 6
	CalendarCols  = 7
	CalendarCells = CalendarRows * CalendarCols

	// PressFeedbackMs is how long the check-in button stays visually pressed
	PressFeedbackMs = 200

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "checkin-"

	// Writer lock
	LockfileName = "checkin.lock"

	// Storage targets
	StorageMemory = "memory"

	// Environment variables
	EnvStorage      = "CHECKIN_STORAGE"
	EnvTimezone     = "CHECKIN_TIMEZONE"
	EnvDebug        = "CHECKIN_DEBUG"
	EnvDBConnection = "CHECKIN_DB_CONNECTION"
)
