package models

// OutageEntry is a calendar day on which no appointments may be offered.
type OutageEntry struct {
	Date       string `json:"date"` // "YYYY-MM-DD" in business time
	Reason     string `json:"reason"`
	ReturnDate string `json:"returnDate,omitempty"`
}

// OutageStatus is the polled snapshot from the status provider. OutToday is
// logically an implicit blackout for the current business day.
type OutageStatus struct {
	OutToday   bool          `json:"outToday"`
	Message    string        `json:"message,omitempty"`
	ReturnDate string        `json:"returnDate,omitempty"`
	Upcoming   []OutageEntry `json:"upcoming"`
}
