package platform

// Package platform contains OS integration used by the tracker: the per-user
// data directory, file and image helpers, and revealing paths in the system
// file manager.
