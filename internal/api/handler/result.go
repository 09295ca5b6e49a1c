package handler

// Store operation results mirror the collection-driver shapes the API has
// always exposed, so clients keep reading insertedId/matchedCount fields.

type insertResult struct {
	InsertedID *string `json:"insertedId"`
	Message    string  `json:"message,omitempty"`
}

type updateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type deleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
