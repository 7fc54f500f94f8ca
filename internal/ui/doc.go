package ui

// Package ui holds the Fyne pieces the tracker needs: a folder picker that
// answers directory selection for the save path, and the app theme that
// follows the stored dark mode flag.
