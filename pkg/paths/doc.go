// Package paths provides centralized path handling for fuga.
// It follows the XDG Base Directory specification through adrg/xdg and
// allows every directory to be overridden by an environment variable.
package paths
