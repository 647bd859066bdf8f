package constants

// MonthLabelStyle selects how calendar month titles are written
type MonthLabelStyle string

// ViewKind is the active view of a habit widget
type ViewKind string

const (
	MonthLabelEnglish MonthLabelStyle = "english"
	MonthLabelChinese MonthLabelStyle = "chinese"

	ViewList     ViewKind = "list"
	ViewCalendar ViewKind = "calendar"

	// Default Settings Values
	DefaultTimezone   = "Local" // Use system local timezone by default
	DefaultWeekStart  = "sunday"
	DefaultMonthLabel = MonthLabelEnglish
)
