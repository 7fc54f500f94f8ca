package model

// Package model defines the tournament data structures held by the state store:
// players, the fixed team roster, match slots, custom views and view presets.
// Every type is plain data with an explicit Clone so snapshots handed to the
// persistence layer never alias in-memory state.
