package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
)

// recipeHeader lists the required recipe CSV columns.
var recipeHeader = []string{"fire", "cold", "lightning", "chaos", "value_min", "value_max", "cost", "slot"}

// recipeSlotNames are the slot names a recipe row may carry, in hint
// priority order. "all" and "jewelry" are accepted spelling variants.
var recipeSlotNames = []string{"armour", "jewelery", "any", "all", "jewelry"}

// ReadRecipes loads the recipe catalog from the CSV file at path.
// The returned slice always carries the null recipe at index 0.
func ReadRecipes(path string) ([]recipe.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open recipes: %w", err)
	}
	defer f.Close()

	return ReadRecipesCSV(f)
}

// ReadRecipesCSV parses the recipe catalog from r. See the package
// documentation for the format and the per-value expansion rule.
func ReadRecipesCSV(r io.Reader) ([]recipe.Recipe, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	cols, err := readHeader(reader, recipeHeader)
	if err != nil {
		return nil, err
	}

	out := []recipe.Recipe{recipe.Null()}

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

		flags := [4]resist.Item{}
		for i, name := range recipeHeader[:4] {
			v, convErr := parseUint(line, name, row[cols[name]])
			if convErr != nil {
				return nil, convErr
			}
			if v > 1 {
				return nil, parseErrorf(line, ErrValueOutOfRange, "%s value has to be 0 or 1, got %d", name, v)
			}
			flags[i] = v
		}

		valueMin, err := parseUint(line, "value_min", row[cols["value_min"]])
		if err != nil {
			return nil, err
		}
		valueMax, err := parseUint(line, "value_max", row[cols["value_max"]])
		if err != nil {
			return nil, err
		}
		if valueMin > valueMax {
			return nil, parseErrorf(line, ErrValueOutOfRange,
				"minimal value %d must not be greater than maximal value %d", valueMin, valueMax)
		}

		cost, err := strconv.ParseFloat(row[cols["cost"]], 64)
		if err != nil {
			return nil, parseErrorf(line, ErrBadRow, "cost %q is not a number", row[cols["cost"]])
		}
		if cost < 0 {
			return nil, parseErrorf(line, ErrValueOutOfRange, "cost %q must be a non-negative number", row[cols["cost"]])
		}

		slot, err := parseRecipeSlot(line, row[cols["slot"]])
		if err != nil {
			return nil, err
		}

		// expand one variant per reachable value; rolling value i succeeds
		// in (max−i+1) of (max−min+1) equally likely outcomes, so its
		// expected cost scales accordingly
		span := float64(valueMax - valueMin + 1)
		for i := valueMin; i <= valueMax; i++ {
			out = append(out, recipe.New(
				resist.New(flags[0]*i, flags[1]*i, flags[2]*i, flags[3]*i),
				cost*span/float64(valueMax-i+1),
				slot,
			))
		}
	}

	return out, nil
}

// parseRecipeSlot resolves the slot column of a recipe row.
func parseRecipeSlot(line int, name string) (recipe.Slot, error) {
	switch name {
	case "armour":
		return recipe.SlotArmour, nil
	case "jewelery", "jewelry":
		return recipe.SlotJewelery, nil
	case "any", "all":
		return recipe.SlotAll, nil
	default:
		return recipe.SlotNone, unknownSlotError(line, name, recipeSlotNames)
	}
}

// readHeader reads the header line and maps required column names to
// their positions. Extra columns are ignored.
func readHeader(reader *csv.Reader, required []string) (map[string]int, error) {
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, parseErrorf(1, ErrMissingColumn, "empty input")
	}
	if err != nil {
		return nil, parseErrorf(1, ErrBadRow, "%v", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, parseErrorf(1, ErrMissingColumn, "%q", name)
		}
	}

	return cols, nil
}

// parseUint parses a non-negative integer field into a resistance item.
func parseUint(line int, name, raw string) (resist.Item, error) {
	v, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, parseErrorf(line, ErrBadRow, "%s %q is not a non-negative integer", name, raw)
	}

	return resist.Item(v), nil
}
