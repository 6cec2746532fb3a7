// Package harness provides utilities for integration testing gitdash against real
// git repositories. Every setup lives under tb.TempDir() and is skipped when
// git is not on PATH.
//
// Environment variables managed:
//   - GIT_CONFIG_GLOBAL: Points at an empty file so user settings cannot leak in
//   - GIT_CONFIG_NOSYSTEM: Set to ignore the system gitconfig
package harness
