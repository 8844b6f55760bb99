package media

type (
	UpdateRequest struct {
		Caption   *string `json:"caption"`
		AltText   *string `json:"alt_text"`
		SortOrder *int    `json:"sort_order"`
	}

	DeleteRequest struct {
		Reason string `json:"reason"`
	}
)
