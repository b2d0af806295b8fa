package processor

import "fmt"

// Status classifies the result of one pipeline run.
type Status int

const (
	StatusProcessed Status = iota
	StatusSkipped          // already carries the processed label
	StatusNoID
	StatusNoImage
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusProcessed:
		return "processed"
	case StatusSkipped:
		return "skipped"
	case StatusNoID:
		return "no id"
	case StatusNoImage:
		return "no image"
	default:
		return "failed"
	}
}

// Outcome is the result of one pipeline run. Err is set for every status
// except StatusProcessed and StatusSkipped.
type Outcome struct {
	Status Status
	Err    error
}

var (
	processed = Outcome{Status: StatusProcessed}
	skipped   = Outcome{Status: StatusSkipped}
	noID      = Outcome{Status: StatusNoID, Err: ErrNoExternalID}
	noImage   = Outcome{Status: StatusNoImage, Err: ErrNoImage}
)

func failed(err error) Outcome {
	return Outcome{Status: StatusFailed, Err: err}
}

// OK reports whether a poster was published.
func (o Outcome) OK() bool {
	return o.Status == StatusProcessed
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusProcessed:
		return "✅ processed"
	case StatusSkipped:
		return "⏭️ already processed"
	case StatusNoID, StatusNoImage:
		return "⚠️ " + o.Err.Error()
	default:
		return fmt.Sprintf("❌ %v", o.Err)
	}
}

// Result pairs an item title with its outcome.
type Result struct {
	Key     string
	Title   string
	Outcome Outcome
}
