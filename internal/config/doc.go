// Package config provides configuration loading, merging, and validation
// facilities for the buildmcp tool set.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON settings file
//  4. Built-in defaults
//
// The main entry points are [GetBuildConfig] for the buildmcp command and
// [GetMetaMCPConfig] for the metamcp command.
package config
