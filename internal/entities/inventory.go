package entities

// InventoryItem is something the character carries
type InventoryItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// GetID returns the item ID
func (i *InventoryItem) GetID() string {
	return i.ID
}

// GetType returns the entity type for rpg-toolkit
func (i *InventoryItem) GetType() string {
	return "inventory_item"
}
