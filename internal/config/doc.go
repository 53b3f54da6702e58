// Package config loads, merges, and validates the quietpage configuration.
//
// Values are assembled from multiple sources, later sources overriding
// earlier non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetStructuredConfig] builds the vault server configuration and
// [GetClientConfig] the client runtime configuration.
package config
