package converters

import (
	"lolatlas/api/dto"
	"lolatlas/pkg/builder"
	"lolatlas/pkg/models/item"
)

// Item converts a catalog item, stripping the description markup.
func Item(it *item.Item, imageBase string) dto.Item {
	return dto.Item{
		ID:          it.ID,
		Name:        it.Name,
		Plaintext:   it.Plaintext,
		Description: builder.PlainText(it.Description),
		Tags:        orEmpty(it.Tags),
		GoldTotal:   it.Gold.Total,
		GoldSell:    it.Gold.Sell,
		Stats:       it.Stats,
		From:        orEmpty(it.From),
		Into:        orEmpty(it.Into),
		ImageURL:    it.Image.URL(imageBase),
	}
}

// Items converts a list of items.
func Items(items []item.Item, imageBase string) []dto.Item {
	result := make([]dto.Item, 0, len(items))
	for i := range items {
		result = append(result, Item(&items[i], imageBase))
	}
	return result
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
