// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for commit-utility.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a parameter struct factory
// ([Command.Params]), and a Run function receiving a context and a
// structured logger. Commands are assembled into a tree in the commands
// package and dispatched via [Command.Execute], which handles flag
// parsing, subcommand routing, and structured help output with examples.
//
// Flags are declared as struct tags on a params struct and bound via
// [BindFlags]; see its documentation for the tag format. Embedding
// [JSONOutput] in a params struct adds the conventional --json flag.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
package cli
