// Package appstate holds the application state: tournament data, UI settings,
// view visibility, presets and custom views. Every mutating action updates
// memory synchronously and queues a snapshot of the affected keys for the
// key-value store; the returned Pending reports when those writes are done.
//
// Writes are independent per key. A crash halfway through a multi-key action
// can leave some keys updated and others not.
package appstate
