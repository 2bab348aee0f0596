// Package universe discovers every type compiled into the running binary
// and references enough of each type's metadata that the linker must keep
// it in the final artifact.
//
// # Overview
//
// The Go linker aggressively prunes type descriptors, method tables, and
// name data that it can prove unreachable. This package walks the
// runtime's typelink tables (one table per loaded module), resolves each
// entry back to a reflect.Type, and reads the identity and member surface
// of every type it recovers. Those reads are folded into an exported
// package-level sink, which makes them observable side effects the linker
// cannot eliminate.
//
// The walk is deliberately defensive: the type universe is arbitrary,
// some entries are expected to be unresolvable, and no failure may stop
// the pass. Every per-type operation runs under a panic guard, and each
// module's scan reports the subset that could be recovered rather than
// failing the module outright.
//
// # Core operations
//
//   - Walk: enumerate all modules and types, touch identities and
//     members, and populate the Catalog with what was found.
//   - TouchMembers: reference the method and field tables of one type.
//   - Construct: best-effort zero-argument construction of one type.
//
// Results are reported as Report/ModuleScan values describing the
// successfully loaded subset per module.
package universe
