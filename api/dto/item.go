package dto

// Item of the catalog.
// The description is returned without markup.
type Item struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Plaintext   string             `json:"plaintext"`
	Description string             `json:"description"`
	Tags        []string           `json:"tags"`
	GoldTotal   int                `json:"goldTotal"`
	GoldSell    int                `json:"goldSell"`
	Stats       map[string]float64 `json:"stats"`
	From        []string           `json:"from"`
	Into        []string           `json:"into"`
	ImageURL    string             `json:"imageUrl"`
}
