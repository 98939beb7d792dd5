// Package fsutil provides small filesystem helpers shared by the scaffolder,
// the configuration loader and the status reporter.
package fsutil
