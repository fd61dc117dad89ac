// Package desktop reads fcitx-style sectioned description files.
//
// A file is a sequence of "[Group]" headers, each followed by "Key=Value"
// lines. Groups keep the order in which they first appear. The package knows nothing about addons, macros or functions; it
// only exposes lookup by group name and by entry key.
//
// Line rules:
//   - Leading and trailing blanks are trimmed from every line.
//   - Empty lines and lines starting with '#' or ';' are ignored.
//   - Entries that appear before the first group are dropped.
//   - A repeated group name continues the existing group.
//   - A repeated key replaces the earlier value.
package desktop
