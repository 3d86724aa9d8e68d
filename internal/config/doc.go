// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win, later sources only fill fields still zero):
//
//  1. command-line flags,
//  2. environment variables,
//  3. an optional JSON configuration file,
//  4. built-in defaults.
//
// The merged result is validated before it is handed to the rest of the
// application.
package config
