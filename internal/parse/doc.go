// Package parse turns loosely formatted human input into mailing-list
// entries.
//
// Input is a free-text string containing zero or more `"Name" <email>;`
// style fragments. The tokenizer splits on semicolons while treating
// anything inside angle brackets as opaque, and the parser classifies each
// fragment against an ordered set of formats. Fragments that match none of
// the formats are skipped with a warning; they never fail the whole parse.
package parse
