package ftracker

import "fmt"

// UnknownWorkoutCodeError is returned when a package carries an unsupported workout code
type UnknownWorkoutCodeError struct {
	Code string
}

func (e *UnknownWorkoutCodeError) Error() string {
	return fmt.Sprintf("unknown workout code %q", e.Code)
}

// ConstructionError is returned when the number of fields does not match the workout
type ConstructionError struct {
	Kind Kind
	Want int
	Got  int
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s expects %d fields, got %d", e.Kind, e.Want, e.Got)
}

// DomainError is returned when a formula cannot be evaluated for the given measurements
type DomainError struct {
	Kind   Kind
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Kind, e.Op, e.Reason)
}
