// Package config defines the format-agnostic model of a rule file and the
// Loader interface implemented by each concrete file format.
//
// The `config.Model` is the only thing the app hands to the rasterizer.
// Concrete loaders for HCL, YAML and the plain text format live in their own
// packages.
package config
