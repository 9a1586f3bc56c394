package app

// TaskInput is a new task as entered on the form.
type TaskInput struct {
	Name     string
	SprintNr int
	Hours    float64
}

// TaskPatch updates only the non-nil fields.
type TaskPatch struct {
	Name     *string
	SprintNr *int
	Hours    *float64
}

func (p TaskPatch) Empty() bool {
	return p.Name == nil && p.SprintNr == nil && p.Hours == nil
}

type ImportResult struct {
	TaskCount      int
	SprintCapCount int
	// AssignedIDs counts tasks that arrived without an ID.
	AssignedIDs int
}
