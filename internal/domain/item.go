package domain

import "time"

// ItemType classifies an inventory item and fixes its image slot contract.
type ItemType string

const (
	ItemTypeDice  ItemType = "dice"
	ItemTypeToken ItemType = "token"
	ItemTypeBoard ItemType = "board"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeDice, ItemTypeToken, ItemTypeBoard:
		return true
	}
	return false
}

// InventoryItem is a purchasable customization item (dice skin, token set,
// board skin). ItemImages maps slot keys to stored image URLs; the key set
// recognized per type is fixed by SlotKeys.
type InventoryItem struct {
	ItemID     string            `json:"item_id"`
	ItemName   string            `json:"item_name"`
	ItemType   ItemType          `json:"item_type"`
	ItemImages map[string]string `json:"item_images"`
	ItemPrice  int               `json:"item_price"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Slot key sets per item type. Order matters: it is the upload and display
// order, and unrecognized field names in a creation request are ignored.
var (
	// DiceSlotKeys: an idle sprite, one face per die value, and a 15 frame
	// roll animation.
	DiceSlotKeys = []string{
		"idle",
		"dice1", "dice2", "dice3", "dice4", "dice5", "dice6",
		"frame_01", "frame_02", "frame_03", "frame_04", "frame_05",
		"frame_06", "frame_07", "frame_08", "frame_09", "frame_10",
		"frame_11", "frame_12", "frame_13", "frame_14", "frame_15",
	}

	// TokenSlotKeys: one sprite per player color.
	TokenSlotKeys = []string{"red", "blue", "green", "yellow", "purple", "orange"}

	// BoardSlotKeys: per player-count variants plus the generic board image.
	BoardSlotKeys = []string{"2playerBoard", "4playerBoard", "board"}
)

// SlotKeys returns the recognized slot key set for an item type.
func SlotKeys(t ItemType) []string {
	switch t {
	case ItemTypeDice:
		return DiceSlotKeys
	case ItemTypeToken:
		return TokenSlotKeys
	case ItemTypeBoard:
		return BoardSlotKeys
	}
	return nil
}

// StoragePrefix returns the object storage path prefix for an item type.
func StoragePrefix(t ItemType) string {
	switch t {
	case ItemTypeDice:
		return "dice"
	case ItemTypeToken:
		return "tokens"
	case ItemTypeBoard:
		return "boards"
	}
	return "items"
}
