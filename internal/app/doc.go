// Package app owns the connector's lifecycle: it assembles the configuration
// model, the warehouse client and the schema checker, and runs the one-shot
// provisioning pass.
package app
