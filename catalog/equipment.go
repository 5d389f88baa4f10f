package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
)

// equipmentHeader lists the required equipment CSV columns.
var equipmentHeader = []string{
	"slot",
	"craft_fire", "craft_cold", "craft_lightning", "craft_chaos",
	"base_fire", "base_cold", "base_lightning", "base_chaos",
	"is_craftable", "is_new",
}

// ReadEquipment loads equipped items from the CSV file at path.
func ReadEquipment(path string) ([]recipe.Equipment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open equipment: %w", err)
	}
	defer f.Close()

	return ReadEquipmentCSV(f)
}

// ReadEquipmentCSV parses equipped items from r.
func ReadEquipmentCSV(r io.Reader) ([]recipe.Equipment, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	cols, err := readHeader(reader, equipmentHeader)
	if err != nil {
		return nil, err
	}

	var out []recipe.Equipment

	line := 1
	for {
		line++
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseErrorf(line, ErrBadRow, "%v", err)
		}

		slot, err := parseEquipmentSlot(line, row[cols["slot"]])
		if err != nil {
			return nil, err
		}

		crafted, err := parseTuple(line, row, cols, "craft_fire", "craft_cold", "craft_lightning", "craft_chaos")
		if err != nil {
			return nil, err
		}
		base, err := parseTuple(line, row, cols, "base_fire", "base_cold", "base_lightning", "base_chaos")
		if err != nil {
			return nil, err
		}

		craftable, err := parseBool(line, "is_craftable", row[cols["is_craftable"]])
		if err != nil {
			return nil, err
		}
		isNew, err := parseBool(line, "is_new", row[cols["is_new"]])
		if err != nil {
			return nil, err
		}

		out = append(out, recipe.NewEquipment(slot, crafted, base, craftable, isNew))
	}

	return out, nil
}

// parseEquipmentSlot resolves an equipment slot name via the canonical
// recipe.ParseSlot set.
func parseEquipmentSlot(line int, name string) (recipe.Slot, error) {
	slot, err := recipe.ParseSlot(name)
	if err != nil {
		return recipe.SlotNone, unknownSlotError(line, name, recipe.SlotNames())
	}

	return slot, nil
}

// parseTuple reads four named columns into a resistance tuple.
func parseTuple(line int, row []string, cols map[string]int, names ...string) (resist.Resistance, error) {
	items := [4]resist.Item{}
	for i, name := range names {
		v, err := parseUint(line, name, row[cols[name]])
		if err != nil {
			return resist.Zero(), err
		}
		items[i] = v
	}

	return resist.New(items[0], items[1], items[2], items[3]), nil
}

// parseBool reads a strict 0/1 boolean field.
func parseBool(line int, name, raw string) (bool, error) {
	switch raw {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, parseErrorf(line, ErrValueOutOfRange, "%s %q has to be 0 or 1", name, raw)
	}
}
