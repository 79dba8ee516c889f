package models

import "time"

// Record is one row of the dashboard data table. Records are plain business
// data: the table is a consumer of "is a session active" and nothing else.
type Record struct {
	ID        string
	Customer  string
	Status    string
	Amount    float64
	CreatedAt time.Time
}
