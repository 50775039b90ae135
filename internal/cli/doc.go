// Package cli provides command-line interface setup and configuration
// for the decktrans application. It handles flag parsing, command
// creation, configuration management using cobra and viper, and
// progress output.
package cli
