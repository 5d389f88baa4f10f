// Package catalog reads recipe and equipment inputs for the recap solver.
//
// What:
//
//   - ReadRecipes / ReadRecipesCSV: the recipe CSV with header
//     fire,cold,lightning,chaos,value_min,value_max,cost,slot. Each row
//     expands to one recipe variant per integer value in
//     [value_min, value_max]: the resistance granted at value i is
//     (fire·i, cold·i, lightning·i, chaos·i) — the axis columns are 0/1
//     flags — and the cost is cost·(max−min+1)/(max−i+1), the expected
//     cost of rolling at least that value. The null recipe is prepended
//     at index 0.
//   - ReadEquipment / ReadEquipmentCSV: the equipment CSV with header
//     slot,craft_fire..craft_chaos,base_fire..base_chaos,
//     is_craftable,is_new. Boolean columns are strictly 0/1.
//   - ReadEquipmentJSON / ParseEquipmentJSON: the same item records from
//     a character-snapshot JSON document (items array with slot, crafted
//     and base 4-arrays, craftable/new flags).
//
// Errors:
//
//	Every parse failure is a *ParseError carrying the 1-based input line
//	(CSV) or item ordinal (JSON) and wrapping one of the sentinel kinds
//	ErrMissingColumn, ErrBadRow, ErrValueOutOfRange, ErrUnknownSlot, so
//	callers can match with errors.Is while printing a single located
//	diagnostic. Unknown slot names include a did-you-mean hint when a
//	known name is within edit distance 2. Errors opening a file are
//	wrapped with fmt.Errorf and are not *ParseError values.
package catalog
