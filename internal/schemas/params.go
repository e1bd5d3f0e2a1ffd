package schemas

// ListParams are the pagination query parameters of every list endpoint.
// An absent limit means "as many as allowed"; an explicit limit below 1 is
// rejected.
type ListParams struct {
	Skip  int  `form:"skip" binding:"min=0"`
	Limit *int `form:"limit" binding:"omitempty,min=1"`
}

// PageLimit returns the requested limit, or 0 when none was given.
func (p ListParams) PageLimit() int {
	return limitValue(p.Limit)
}

// ItemListParams adds the optional item type filter of GET /items.
type ItemListParams struct {
	ListParams
	ItemTypeID uint `form:"item_type_id" binding:"omitempty,min=1"`
}

// AuditListParams filters GET /audit.
type AuditListParams struct {
	ListParams
	EventType  string `form:"event_type" binding:"omitempty,oneof=create update delete seed"`
	EntityType string `form:"entity_type" binding:"omitempty,max=50"`
}

func limitValue(limit *int) int {
	if limit == nil {
		return 0
	}
	return *limit
}
