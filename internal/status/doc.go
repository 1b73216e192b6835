// Package status derives a human-readable Graphiti availability summary
// from the loaded configuration.
package status
