// Package testutil provides utilities for testing fuga components.
//
// Key components:
//   - MockConfigRepository: in-memory marks and presets with call recording
//     and error injection
//   - RecordingSink: a ProgressSink that keeps every report
//   - PlainUI: a UIService with fixed ASCII glyphs and no color
//   - MemFS / TempTree: filesystem fixtures over afero or a real temp dir
//
// All test data should be defined inline, not in external files.
package testutil
