// Package diagnostic collects advisory messages produced while resolving
// addon descriptors.
//
// Diagnostics never stop generation by themselves. They cover:
//   - Policy downgrades (a flag forced off because it cannot apply)
//   - Declared items that were skipped because they do not resolve
package diagnostic
