package history

import "time"

// Run is one recorded gate evaluation.
type Run struct {
	ID          string
	Label       string
	Origin      string
	Domain      string
	Originality float64
	AITone      float64
	Humanity    float64
	Risk        string
	Passed      bool
	Report      string
	EvaluatedAt time.Time
}

type QueryOpts struct {
	Since      time.Time
	Search     string
	FailedOnly bool
	Limit      int
}
