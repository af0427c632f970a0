package candle

import "time"

// RecentLimit bounds the recent-candles feed. The displayed total always
// comes from a full collection count, independent of this bound.
const RecentLimit = 12

// MaxNameLen caps the optional visitor name on a candle.
const MaxNameLen = 50

// Candle is one "light a candle" action. Append-only: no edit or delete
// path exists.
type Candle struct {
	ID    string    `json:"id" bson:"_id,omitempty"`
	Name  string    `json:"name,omitempty" bson:"name,omitempty"`
	LitAt time.Time `json:"litAt" bson:"litAt"`
}
