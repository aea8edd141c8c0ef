package models

import "time"

// TargetChange records a detected, alert-eligible change for one watch.
type TargetChange struct {
	Watch   Watch
	Message string
}

// TargetError records a per-target failure. Target errors are aggregated
// and reported; they never abort the run or affect the exit code.
type TargetError struct {
	Watch   Watch
	Message string
}

// RunSummary aggregates the outcome of one monitoring run.
type RunSummary struct {
	StartedAt    time.Time
	Duration     time.Duration
	TotalTargets int
	Changes      []TargetChange
	Errors       []TargetError
}
