// Package importer turns spreadsheet exports into mailing-list entries.
//
// Department exports disagree on layout, so the id and name columns can be
// addressed by header name, Excel-style letter, or zero-based index. Each
// usable row is reduced to an (id, name) pair, the id is synthesized into an
// `<id>@<domain>` email, and the resulting entries are inserted through the
// batch store with added/already-present counts for the final report.
package importer
