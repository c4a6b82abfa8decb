package item

import "lolatlas/pkg/models/image"

// Struct for holding the item gold.
type Gold struct {
	Base        int  `json:"base"`
	Total       int  `json:"total"`
	Sell        int  `json:"sell"`
	Purchasable bool `json:"purchasable"`
}

// Struct for holding an item data.
// The ID is the key of the item on the Data Dragon map, it's not sent inside the item itself.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Plaintext   string          `json:"plaintext"`
	Image       image.Image     `json:"image"`
	Gold        Gold            `json:"gold"`
	Tags        []string        `json:"tags"`
	Maps        map[string]bool `json:"maps"`
	Stats       Stats           `json:"stats"`
	From        []string        `json:"from,omitempty"`
	Into        []string        `json:"into,omitempty"`
	Depth       int             `json:"depth,omitempty"`
}

// HasTag reports whether the item belongs to the category.
func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AvailableOn reports whether the item is enabled on the given map id.
func (i *Item) AvailableOn(mapID string) bool {
	return i.Maps[mapID]
}
