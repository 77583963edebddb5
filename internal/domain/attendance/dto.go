package attendance

// Presence is shift-level attendance for one employee on one day.
// Employees are present by default; approved leave flips shifts off.
type Presence struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
}

type EmployeeRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DailyResponse buckets every employee-role account for one date.
type DailyResponse struct {
	Date string `json:"date"`

	PresentFullDay []EmployeeRef `json:"present_full_day"`
	MorningOnly    []EmployeeRef `json:"morning_only"`
	AfternoonOnly  []EmployeeRef `json:"afternoon_only"`
	AbsentFullDay  []EmployeeRef `json:"absent_full_day"`

	TotalEmployees   int `json:"total_employees"`
	MorningPresent   int `json:"morning_present"`
	MorningAbsent    int `json:"morning_absent"`
	AfternoonPresent int `json:"afternoon_present"`
	AfternoonAbsent  int `json:"afternoon_absent"`
}

type EmployeeMonth struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// Days holds one entry per calendar day of the month, index 0 = day 1.
	Days []Presence `json:"days"`
}

type MonthlyResponse struct {
	Month       string          `json:"month"`
	DaysInMonth int             `json:"days_in_month"`
	Employees   []EmployeeMonth `json:"employees"`
}
