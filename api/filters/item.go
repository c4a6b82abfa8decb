package filters

import "strings"

// URI params for the single item endpoint.
type ItemURIParams struct {
	ItemId string `uri:"itemId" binding:"required"`
}

// Query params of the item search.
type ItemSearchQueryParams struct {
	Query string `form:"q"`
	Tag   string `form:"tag"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type ItemSearchFilter struct {
	Query string
	Tag   string
	Limit int
}

func NewItemSearchFilter(qp *ItemSearchQueryParams) *ItemSearchFilter {
	return &ItemSearchFilter{
		Query: strings.TrimSpace(qp.Query),
		Tag:   strings.TrimSpace(qp.Tag),
		Limit: qp.Limit,
	}
}
