// Package config provides configuration management for the Graphiti
// integration.
//
// Configuration is loaded from environment variables using the env package.
// The Graphiti connection settings never fail to load: boolean flags accept
// a fixed set of spellings and fall back to their default polarity for
// anything else, and a malformed port falls back to the default port.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if cfg.IsValid() {
//	    fmt.Printf("FalkorDB at %s\n", cfg.ConnectionURI())
//	}
package config
