package catalog_test

import (
	"testing"

	"github.com/katalvlaran/recap/catalog"
	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
	"github.com/stretchr/testify/require"
)

func TestParseEquipmentJSON_ParsesItems(t *testing.T) {
	data := []byte(`{
		"items": [
			{"slot": "gloves", "crafted": [10,0,0,0], "base": [2,2,2,0], "craftable": true, "new": false},
			{"slot": "ring1", "crafted": [0,0,0,0], "base": [0,0,15,0], "craftable": false, "new": true}
		]
	}`)

	got, err := catalog.ParseEquipmentJSON(data)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, recipe.SlotGloves, got[0].Slot)
	require.Equal(t, resist.New(10, 0, 0, 0), got[0].Crafted)
	require.True(t, got[0].Craftable)

	require.Equal(t, recipe.SlotRing1, got[1].Slot)
	require.Equal(t, resist.New(0, 0, 15, 0), got[1].Base)
	require.True(t, got[1].New)
}

func TestParseEquipmentJSON_AbsentTupleIsZero(t *testing.T) {
	data := []byte(`{"items": [{"slot": "belt", "craftable": true}]}`)

	got, err := catalog.ParseEquipmentJSON(data)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, resist.Zero(), got[0].Crafted)
	require.Equal(t, resist.Zero(), got[0].Base)
}

func TestParseEquipmentJSON_UnknownSlot(t *testing.T) {
	data := []byte(`{"items": [{"slot": "bots", "crafted": [0,0,0,0]}]}`)

	_, err := catalog.ParseEquipmentJSON(data)
	require.ErrorIs(t, err, catalog.ErrUnknownSlot)
	require.ErrorContains(t, err, `did you mean "boots"`)
}

func TestParseEquipmentJSON_WrongTupleLength(t *testing.T) {
	data := []byte(`{"items": [{"slot": "boots", "crafted": [1,2,3]}]}`)

	_, err := catalog.ParseEquipmentJSON(data)
	require.ErrorIs(t, err, catalog.ErrBadRow)

	var parseErr *catalog.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 1, parseErr.Line)
}

func TestParseEquipmentJSON_MissingItems(t *testing.T) {
	_, err := catalog.ParseEquipmentJSON([]byte(`{"character": "x"}`))
	require.ErrorIs(t, err, catalog.ErrMissingColumn)
}

func TestParseEquipmentJSON_InvalidDocument(t *testing.T) {
	_, err := catalog.ParseEquipmentJSON([]byte(`{"items": [`))
	require.ErrorIs(t, err, catalog.ErrBadRow)
}
