package matchhistory

// Record marks one team's participation in a match on a given date.
// Its only purpose is duplicate detection: a match is considered
// already processed when a record exists for a participating team and
// the match date. Records are never mutated or deleted.
type Record struct {
	ID     int64
	TeamID int64
	Date   string
}
