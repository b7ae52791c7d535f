// Package main hosts the mailbatch CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into batch
// store operations: database lifecycle (new, del, activate), entry
// management (add, rem, check), output (print, batches, stat), the optimize
// rebalance, and the spreadsheet importer. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
