package models

// Stage is a step of the per-request pipeline. Each request moves
// received -> validated -> projected -> charted -> composed -> dispatched ->
// cleaned_up, or jumps to failed from whichever stage broke.
type Stage string

const (
	StageReceived   Stage = "received"
	StageValidated  Stage = "validated"
	StageProjected  Stage = "projected"
	StageCharted    Stage = "charted"
	StageComposed   Stage = "composed"
	StageDispatched Stage = "dispatched"
	StageCleanedUp  Stage = "cleaned_up"
	StageFailed     Stage = "failed"
)

// stageOrder lists the success path.
var stageOrder = []Stage{
	StageReceived,
	StageValidated,
	StageProjected,
	StageCharted,
	StageComposed,
	StageDispatched,
	StageCleanedUp,
}

// Next returns the stage that follows s on the success path, and false for
// terminal stages.
func (s Stage) Next() (Stage, bool) {
	for i, st := range stageOrder[:len(stageOrder)-1] {
		if st == s {
			return stageOrder[i+1], true
		}
	}
	return "", false
}

// IsTerminal reports whether no further transitions are possible.
func (s Stage) IsTerminal() bool {
	return s == StageCleanedUp || s == StageFailed
}
