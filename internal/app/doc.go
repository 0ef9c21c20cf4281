// Package app wires application dependencies for the CLI.
//
// It builds the session's store, the catalog service and the optional digest
// scheduler from config.Config, exposing them via the App struct for
// commands to use. An App is constructed once per session and torn down with
// Close.
package app
