// Package addon extracts typed descriptors from an addon description
// document.
//
// Resolution pipeline:
//  1. LoadAddon reads the FcitxAddon group: display name, symbol prefix and
//     the declared macro, include and function lists.
//  2. Every declared macro and function name is resolved against the
//     document into a Resolved value that is either Found (with its
//     descriptor) or Missing (with the reason).
//  3. Policy downgrades found along the way are recorded as diagnostics.
//
// Build runs both phases and returns the resulting Plan, which is all the
// emission engine needs.
package addon
