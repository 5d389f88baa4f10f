package catalog

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
)

// ReadEquipmentJSON loads equipped items from a character-snapshot JSON
// file at path.
func ReadEquipmentJSON(path string) ([]recipe.Equipment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open snapshot: %w", err)
	}

	return ParseEquipmentJSON(data)
}

// ParseEquipmentJSON parses a character snapshot of the form
//
//	{"items": [
//	  {"slot": "gloves", "crafted": [10,0,0,0], "base": [2,2,2,0],
//	   "craftable": true, "new": false},
//	  ...
//	]}
//
// ParseError lines refer to 1-based item ordinals within the array.
func ParseEquipmentJSON(data []byte) ([]recipe.Equipment, error) {
	if !gjson.ValidBytes(data) {
		return nil, parseErrorf(0, ErrBadRow, "not valid JSON")
	}

	doc := gjson.ParseBytes(data)
	items := doc.Get("items")
	if !items.Exists() || !items.IsArray() {
		return nil, parseErrorf(0, ErrMissingColumn, `"items" array`)
	}

	var out []recipe.Equipment
	var firstErr error

	ordinal := 0
	items.ForEach(func(_, item gjson.Result) bool {
		ordinal++

		slotName := item.Get("slot").String()
		slot, err := recipe.ParseSlot(slotName)
		if err != nil {
			firstErr = unknownSlotError(ordinal, slotName, recipe.SlotNames())

			return false
		}

		crafted, err := snapshotTuple(ordinal, item, "crafted")
		if err != nil {
			firstErr = err

			return false
		}
		base, err := snapshotTuple(ordinal, item, "base")
		if err != nil {
			firstErr = err

			return false
		}

		out = append(out, recipe.NewEquipment(
			slot, crafted, base,
			item.Get("craftable").Bool(),
			item.Get("new").Bool(),
		))

		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}

// snapshotTuple reads a 4-element non-negative integer array field.
func snapshotTuple(ordinal int, item gjson.Result, field string) (resist.Resistance, error) {
	arr := item.Get(field)
	if !arr.Exists() {
		// an absent tuple means the item contributes nothing there
		return resist.Zero(), nil
	}

	values := arr.Array()
	if len(values) != 4 {
		return resist.Zero(), parseErrorf(ordinal, ErrBadRow,
			"%s must have exactly 4 elements, got %d", field, len(values))
	}

	items := [4]resist.Item{}
	for i, v := range values {
		n := v.Int()
		if n < 0 || n > 65535 {
			return resist.Zero(), parseErrorf(ordinal, ErrValueOutOfRange,
				"%s[%d] = %d", field, i, n)
		}
		items[i] = resist.Item(n)
	}

	return resist.New(items[0], items[1], items[2], items[3]), nil
}
