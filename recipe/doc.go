// Package recipe defines crafting recipes, equipment slots, and equipped
// items for the recap assignment solver.
//
// What:
//
//   - Slot: a bit set over the ten physical equipment slots, with the
//     aggregate aliases SlotArmour, SlotJewelery and SlotAll. A recipe
//     fits a physical slot s iff mask & s ≠ 0.
//   - Recipe: an immutable (resistance gained, cost, applicable slots)
//     record. CostInf is the sentinel for "no finite cost"; Null() is the
//     distinguished zero-resistance, zero-cost recipe that encodes "use
//     this slot for nothing". Catalogs always carry it at index 0.
//   - Equipment: a currently equipped item (slot, crafted and base
//     resistances, craftable/new flags), consumed by reassignment.
//   - ParseSlot / Slot.String: the canonical name set for slots and
//     aliases; parsing and formatting round-trip for every named value.
//
// Errors:
//
//   - ErrUnknownSlot: ParseSlot received a name outside the canonical set.
package recipe
