package kvstore

// Package kvstore implements the durable key-value layer behind the state store.
// Keys are flat strings and values are JSON documents. Backends cover a single
// JSON file, SQLite and Fyne preferences; Connect puts any backend behind a
// message boundary served by one goroutine, so callers only ever talk to it
// asynchronously through a Client.
