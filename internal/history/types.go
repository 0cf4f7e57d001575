package history

import "time"

// Variant identifies single street five card draw in recorded rounds.
const Variant = "F5D1"

// Round is one completed round in a PHH-style history. Player positions
// start at the small blind and only include seats dealt in.
type Round struct {
	Variant           string   `toml:"variant"`
	Table             string   `toml:"table,omitempty"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Seats             []int    `toml:"seats,omitempty"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Winnings          []int    `toml:"winnings,omitempty"`
	UncalledReturned  []int    `toml:"uncalled_returned,omitempty"` // nil when every bet was matched
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	RoundID           string   `toml:"hand"`
	Time              string   `toml:"time,omitempty"`
	TimeZone          string   `toml:"time_zone,omitempty"`
	Day               int      `toml:"day,omitempty"`
	Month             int      `toml:"month,omitempty"`
	Year              int      `toml:"year,omitempty"`

	Timestamp time.Time `toml:"-"`
}

func (r *Round) populateTimeFields() {
	if r.Timestamp.IsZero() {
		return
	}
	utc := r.Timestamp.UTC()
	r.Time = utc.Format("15:04:05")
	r.TimeZone = "UTC"
	r.Day = utc.Day()
	r.Month = int(utc.Month())
	r.Year = utc.Year()
}
