// Package nodegrid models a rectangular cluster of storage nodes, each with
// a fixed capacity split into used and available space, and the puzzle of
// shifting one payload node's data to the top-left corner.
//
// What:
//
//   - Node holds (Used, Avail); Used+Avail never changes across moves.
//   - State is the full-fidelity search state: every node's occupancy plus
//     the payload location, with an incrementally maintained move list.
//   - Compressed narrows a State's identity to (empty node, payload) once a
//     classification pass proves every other node is either an
//     interchangeable filler or an immovable blocker.
//   - Parse reads the cluster's df-style listing; ViablePairs and Render
//     inspect a parsed cluster.
//
// Moves:
//
//   - A → B (orthogonal neighbors) is legal iff A.Used > 0 and
//     B.Avail ≥ A.Used. All of A's data lands in B and A becomes empty.
//   - If A held the payload, the payload now lives in B.
//
// Estimate:
//
//   - Taxicab distance from the payload to (0,0), plus one for every
//     diagonal band x+y = k still ahead of the payload in which no node can
//     currently take the payload's data. Entering such a band requires at
//     least one extra move whose source lies in that band, so the bound is
//     admissible; a single move frees space in at most one band, so it is
//     also consistent.
//
// Compression:
//
//   - Compress rejects the grid with ErrNotCompressible unless exactly one
//     node is empty, every filler fits into every small node, no two
//     fillers can ever merge, and blockers can neither move nor receive.
//     Callers fall back to the full State in that case; Solve does so
//     automatically.
//
// Errors:
//
//   - ErrNilGrid, ErrPayloadOutOfRange, ErrEmptyPayload from New.
//   - ErrBadLine from Parse, plus grid.ErrMissingCell for incomplete listings.
//   - ErrNotCompressible from Compress.
package nodegrid
