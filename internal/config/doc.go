// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the vault client and
// [GetServerConfig] for the backup server; both are views over the shared
// [GetStructuredConfig] result with role-specific defaults and validation.
package config
