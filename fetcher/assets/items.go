package assets

import (
	"context"
	"fmt"

	"lolatlas/pkg/models/item"
)

func (l *Loader) itemsURL(version string) string {
	return fmt.Sprintf("%s/%s/data/%s/item.json", l.opts.CDN, version, l.opts.Locale)
}

// ItemImageBase is the prefix of the item images.
func (l *Loader) ItemImageBase(version string) string {
	return fmt.Sprintf("%s/%s/img/item/", l.opts.CDN, version)
}

// fetchItems gets the raw item catalog, ids set from the document keys and ordered by id.
func (l *Loader) fetchItems(ctx context.Context, version string) ([]item.Item, error) {
	var document itemDocument
	if err := l.fetchJSON(ctx, l.itemsURL(version), &document); err != nil {
		return nil, err
	}

	items := make([]item.Item, 0, len(document.Data))
	for _, id := range sortedKeys(document.Data) {
		it := document.Data[id]
		it.ID = id
		items = append(items, it)
	}
	return items, nil
}

// GetItems returns the usable item catalog of the version.
func (l *Loader) GetItems(ctx context.Context, version string) ([]item.Item, error) {
	items, err := l.fetchItems(ctx, version)
	if err != nil {
		return nil, err
	}
	return FilterItems(items, l.opts.MapID, l.opts.ExcludedItemTags), nil
}

// FilterItems keeps the purchasable items with an image that are enabled on the map.
// Items carrying any of the excluded tags are dropped as well.
func FilterItems(items []item.Item, mapID string, excludedTags []string) []item.Item {
	filtered := make([]item.Item, 0, len(items))
	for _, it := range items {
		if !it.Gold.Purchasable || it.Image.Full == "" || !it.AvailableOn(mapID) {
			continue
		}
		if hasAnyTag(&it, excludedTags) {
			continue
		}
		filtered = append(filtered, it)
	}
	return filtered
}

func hasAnyTag(it *item.Item, tags []string) bool {
	for _, tag := range tags {
		if it.HasTag(tag) {
			return true
		}
	}
	return false
}
