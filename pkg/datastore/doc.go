// Package datastore persists fuga's mark list and presets.
//
// The whole state lives in one TOML file (fuga.toml) that is read, modified
// and written back as a unit on every mutation. Concurrent writers are not
// coordinated; the last write wins.
//
// Layout:
//
//	[user_config]
//	box_path = "/home/me/.config/fuga/box"
//
//	[data]
//	targets = ["/abs/a", "/abs/b"]
//
//	[data.presets]
//	work = ["/abs/a"]
//
// A legacy single-mark file (data.target = "/abs/x") is migrated into
// data.targets the first time the marks are read.
package datastore
