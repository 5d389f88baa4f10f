// Package resist defines the elemental resistance 4-tuple and its dense
// linear index map, the value types every solver in
// github.com/katalvlaran/recap is built on.
//
// What:
//
//   - Resistance: immutable 4-tuple (fire, cold, lightning, chaos) of
//     non-negative bounded integers.
//   - Add: component-wise, unsaturated (callers keep components inside the
//     table dimensions).
//   - Sub: component-wise, saturating at zero. The assignment recurrence
//     relies on this clamping to encode "at least" semantics on the boundary.
//   - LessEq / GreaterEq: component-wise AND of per-axis comparisons.
//   - Grid: bijection between tuples v ≤ max and a dense linear index in
//     [0, Size), using mixed-radix composition with chaos as the innermost
//     (fastest-varying) axis.
//
// Why:
//
//   - The assignment engine stores its cost and back-pointer tables as flat
//     slabs; Grid is the single source of truth for addressing them.
//   - Saturating subtraction makes every predecessor lookup in the dynamic
//     program total: a recipe granting more than a cell requires maps to the
//     zero boundary instead of out of range.
//
// Complexity:
//
//   - All Resistance operations: O(1), allocation-free.
//   - Grid.Index / Grid.At: O(1).
//
// Errors:
//
//   - None. Resistance and Grid are pure value types; out-of-domain inputs
//     to Grid.Index are a programmer error (documented, unchecked on the
//     hot path).
package resist
