package main

// uiState tracks what the status row is waiting on besides showing
// messages.
type uiState int

const (
	uiNormal uiState = iota
	uiConfirmClear
)

// status is the last message shown on the status row.
type status struct {
	text  string
	isErr bool
}

// setupMsg fires once the bubbletea session is up and the first paint can
// happen.
type setupMsg struct{}
