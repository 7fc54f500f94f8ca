package update

// Package update checks a release feed for a newer version of the tracker and
// downloads its asset. The feed is a latest.yml manifest in the format
// electron-builder publishes, read from the local filesystem. Progress is
// reported through a single status callback.
