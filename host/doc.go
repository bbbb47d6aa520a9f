// Package host provides the in-memory editing-surface host for Strata:
// named line buffers with a cursor, an unsaved-changes flag, and push-down
// position anchors that slide as lines are inserted and deleted around them.
//
// Rows are 1-based, matching the surface package. The host is driven by a
// single editing loop and is not safe for concurrent use.
package host
