package catalog_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/recap/catalog"
	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
	"github.com/stretchr/testify/require"
)

const equipmentHeader = "slot,craft_fire,craft_cold,craft_lightning,craft_chaos," +
	"base_fire,base_cold,base_lightning,base_chaos,is_craftable,is_new\n"

func TestReadEquipmentCSV_ParsesItems(t *testing.T) {
	in := strings.NewReader(equipmentHeader +
		"gloves,10,0,0,0,2,2,2,0,1,0\n" +
		"helmet,0,0,0,0,0,4,0,0,0,1\n")

	got, err := catalog.ReadEquipmentCSV(in)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, recipe.SlotGloves, got[0].Slot)
	require.Equal(t, resist.New(10, 0, 0, 0), got[0].Crafted)
	require.Equal(t, resist.New(2, 2, 2, 0), got[0].Base)
	require.True(t, got[0].Craftable)
	require.False(t, got[0].New)
	require.Equal(t, resist.New(12, 2, 2, 0), got[0].AllResistances())

	require.Equal(t, recipe.SlotHelmet, got[1].Slot)
	require.False(t, got[1].Craftable)
	require.True(t, got[1].New)
}

func TestReadEquipmentCSV_BooleanMustBeBinary(t *testing.T) {
	in := strings.NewReader(equipmentHeader +
		"gloves,0,0,0,0,0,0,0,0,yes,0\n")

	_, err := catalog.ReadEquipmentCSV(in)
	require.ErrorIs(t, err, catalog.ErrValueOutOfRange)
	require.ErrorContains(t, err, "is_craftable")
}

func TestReadEquipmentCSV_UnknownSlotWithHint(t *testing.T) {
	in := strings.NewReader(equipmentHeader +
		"glovse,0,0,0,0,0,0,0,0,1,0\n")

	_, err := catalog.ReadEquipmentCSV(in)
	require.ErrorIs(t, err, catalog.ErrUnknownSlot)
	require.ErrorContains(t, err, `did you mean "gloves"`)

	var parseErr *catalog.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 2, parseErr.Line)
}

func TestReadEquipmentCSV_ShortRow(t *testing.T) {
	in := strings.NewReader(equipmentHeader +
		"gloves,0,0,0\n")

	_, err := catalog.ReadEquipmentCSV(in)
	require.ErrorIs(t, err, catalog.ErrBadRow)
}

func TestReadEquipmentCSV_MissingColumn(t *testing.T) {
	in := strings.NewReader("slot,craft_fire\n")

	_, err := catalog.ReadEquipmentCSV(in)
	require.ErrorIs(t, err, catalog.ErrMissingColumn)
}
