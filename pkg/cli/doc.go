// Package cli provides the command-line interface for idgen.
//
// The cli package implements all idgen commands:
//   - uuid: generate UUIDs (versions 1, 3, 4, 5, 6, 7, and 8)
//   - ulid: generate ULIDs
//   - oid: generate MongoDB-style ObjectIds
//   - version: show idgen version information
//
// Every generate command accepts -n/--num to produce a batch of
// identifiers, printed one per line. A batch is all-or-nothing: if any
// identifier in the batch cannot be generated, nothing is printed and the
// command exits non-zero.
//
// Defaults can be provided via IDGEN_* environment variables or a
// configuration file at ~/.config/idgen/config.yaml; flags take
// precedence over both.
package cli
