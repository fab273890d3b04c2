// Package config provides functionality for loading and managing application configuration.
//
// This package handles settings structs for logging and database access,
// validating them and making them accessible throughout the application.
// It centralizes configuration management for easier modification and extension.
package config
