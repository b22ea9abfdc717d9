package rulebook

// ItemType categorizes an inventory item well enough for derived-stat
// computation. Anything the armor class rules do not care about is
// ItemTypeGear.
type ItemType string

const (
	ItemTypeWeapon ItemType = "weapon"
	ItemTypeArmor  ItemType = "armor"
	ItemTypeShield ItemType = "shield"
	ItemTypeTool   ItemType = "tool"
	ItemTypePack   ItemType = "pack"
	ItemTypeGear   ItemType = "gear"
)

// ItemRef is the canonical item shape every catalog source is
// normalized to. Raw catalog entries arrive as bare names or loose
// {name, type} records; the catalog client converts them before the
// core ever sees them.
type ItemRef struct {
	Key  string   `json:"key,omitempty"`
	Name string   `json:"name"`
	Type ItemType `json:"type"`
}

// EquipmentBranch is one side of an equipment choice.
type EquipmentBranch struct {
	Label string    `json:"label"`
	Items []ItemRef `json:"items"`
}

// EquipmentChoice is a starting-equipment decision offering exactly two
// branches; the first carries the label "group", the second "or".
type EquipmentChoice struct {
	ID       string            `json:"id"`
	Prompt   string            `json:"prompt"`
	Branches []EquipmentBranch `json:"branches"`
}

// BranchCount is the number of branches every equipment choice carries.
const BranchCount = 2

// UnknownItem builds the placeholder used when a catalog lookup misses.
// The draft keeps moving; the miss is logged where it happens.
func UnknownItem(key string) ItemRef {
	return ItemRef{
		Key:  key,
		Name: "Unknown item (" + key + ")",
		Type: ItemTypeGear,
	}
}
