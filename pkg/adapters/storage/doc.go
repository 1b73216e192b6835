// Package storage provides state marker storage implementations.
//
// Implementations:
//   - file: JSON marker file in the working directory (MVP)
//   - memory: In-memory for testing
package storage
