package domain

// Default booking configuration values
const (
	DefaultFirstSlotHour = 11 // 11:00
	DefaultLastSlotHour  = 21 // 21:00, inclusive
	DefaultHorizonDays   = 6  // today + 6 days
	DefaultTimezone      = "Asia/Kolkata"
)

// Business validation constants
const (
	MinSlotHour        = 0
	MaxSlotHour        = 23
	MaxHorizonDays     = 60
	MaxSlotsPerBooking = MaxSlotHour - MinSlotHour + 1
	MaxContactLength   = 254
)

// Time format constants
const (
	DateFormat        = "02-01-2006" // DD-MM-YYYY, wire format
	StorageDateFormat = "2006-01-02" // YYYY-MM-DD, persisted and sortable
	SlotFormat        = "%02d:00"    // HH:00
)
