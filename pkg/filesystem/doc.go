// Package filesystem provides filesystem implementations for fuga.
//
// It contains the types.FS implementations (the OS filesystem and an
// afero-backed one used in tests) and Service, the FileSystemService that
// performs copy, move and link with progress reporting.
package filesystem
