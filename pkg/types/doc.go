// Package types defines the core types and interfaces used throughout fuga.
// This includes the capability interfaces consumed by the commands and the
// dashboard (FileSystemService, ConfigRepository, UIService, ProgressSink)
// as well as data structures like FileInfo and AppConfig.
package types
