// Package cli is responsible for parsing command-line arguments and
// translating them into a configuration object for the main application.
package cli
