// Package list owns the mailing-list data model and its batch store.
//
// A Collection is an ordered sequence of fixed-capacity Batches of Entries,
// persisted as a single JSON document whose shape is an external
// compatibility contract (the email client's import format). The Store loads
// that document, keeps a case-folded email index for O(1) membership checks,
// and applies capacity-aware inserts, removal with batch compaction, and the
// optimize rebalance that repacks entries into the minimum number of full
// batches.
//
// Every mutation preserves two invariants: email addresses are unique across
// the whole collection regardless of case, and batch ids stay contiguous
// starting at 1 with no empty batch persisted.
//
// Commands follow a read-modify-write cycle with no file locking. Two
// concurrent invocations against the same database can race and the later
// writer wins; the tool assumes a single operator running one command at a
// time.
package list
