// Package app contains the application lifecycle: it loads a rule file,
// rasterizes the grid, runs one validation round and reports the verdict.
// It is decoupled from any specific entrypoint like a CLI.
package app
