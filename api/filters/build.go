package filters

// URI params for the build endpoints.
type BuildURIParams struct {
	BuildId string `uri:"buildId" binding:"required,uuid"`
}

// URI params for removing a single slot.
type BuildSlotURIParams struct {
	BuildId string `uri:"buildId" binding:"required,uuid"`
	Index   int    `uri:"index" binding:"min=0"`
}

// Body of the champion selection.
type SetChampionBody struct {
	ChampionId string `json:"championId" binding:"required"`
}

// Body of an item addition.
type AddItemBody struct {
	ItemId string `json:"itemId" binding:"required"`
}
