package domain

// BlockSentinel value of customerName and service on placeholder reservations
// created by the admin bulk block
const BlockSentinel = "__BLOCK__"

// UnassignedEmployee grid row key for reservations without an employee
const UnassignedEmployee = "unassigned"

// UnassignedEmployeeName display name for reservations without an employee
const UnassignedEmployeeName = "Unassigned"

// AdminConflictWindowMinutes minimal distance between two reservations of one employee
// when an admin creates a reservation by hand
const AdminConflictWindowMinutes = 30

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
