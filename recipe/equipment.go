package recipe

import "github.com/katalvlaran/recap/resist"

// Equipment describes a currently equipped item.
//
// Crafted holds the resistances added by a previous craft; Base the
// intrinsic resistances of the item. New marks an item that replaces the
// occupant of the same slot. Craftable carries the input's craftable
// flag; Reassign does not consult it and treats every retained item as
// a re-craft candidate.
type Equipment struct {
	Slot      Slot
	Crafted   resist.Resistance
	Base      resist.Resistance
	Craftable bool
	New       bool
}

// NewEquipment constructs an Equipment record.
func NewEquipment(slot Slot, crafted, base resist.Resistance, craftable, isNew bool) Equipment {
	return Equipment{Slot: slot, Crafted: crafted, Base: base, Craftable: craftable, New: isNew}
}

// AllResistances returns the item's total contribution, crafted plus base.
func (e Equipment) AllResistances() resist.Resistance {
	return e.Crafted.Add(e.Base)
}
