// Package state defines the Graphiti state marker for a working directory.
//
// The marker tracks whether the graph database has been initialized for a
// directory, how many episodes have been ingested, and a bounded log of the
// most recent integration errors. It is persisted as .graphiti_state.json
// via the storage adapters.
package state
