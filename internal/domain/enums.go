package domain

// Status is the two-state verdict for one day: the plan is feasible or not.
type Status string

const (
	StatusOK  Status = "ok"
	StatusBad Status = "bad"
)

// StatusReason names the ceiling responsible for a bad day.
type StatusReason string

const (
	ReasonOK     StatusReason = "ok"
	ReasonMonth  StatusReason = "month"
	ReasonTotal  StatusReason = "total"
	ReasonSprint StatusReason = "sprint"
)

// CeilingKind identifies one of the three budget accumulators.
type CeilingKind string

const (
	CeilingMonth  CeilingKind = "month"
	CeilingSprint CeilingKind = "sprint"
	CeilingTotal  CeilingKind = "total"
)

// ViewMode selects the dashboard projection.
type ViewMode string

const (
	ViewMonth    ViewMode = "month"
	ViewTimeline ViewMode = "timeline"
	ViewBars     ViewMode = "bars"
)

// ValidViewModes is the canonical set of accepted view mode strings.
var ValidViewModes = map[string]bool{
	"month": true, "timeline": true, "bars": true,
}
