// Package order implements the Order aggregate, the subject of the stage and
// ship-date workflow. An order moves through the ordered stage catalog while it
// is Active; once Completed or Cancelled it accepts no further transitions.
//
// The aggregate owns the transition rules:
//   - Forward transitions (later catalog position) are allowed unconditionally,
//     including jumps over intermediate stages.
//   - Same-stage transitions are only accepted as amendments, when the request
//     carries a ship-date revision or note.
//   - Backward transitions must be explicitly flagged as corrections; an
//     unflagged backward move usually indicates a data error rather than rework.
//
// The original ship date is immutable once set; only the current ship date can
// be revised. The version field supports optimistic concurrency control at the
// persistence layer and increments once per committed mutation.
package order
