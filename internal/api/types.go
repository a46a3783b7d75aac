package api

// FindProvidersRequest is the body of POST /api/find-providers.
type FindProvidersRequest struct {
	MemberID string `json:"member_id"`
	TopN     int    `json:"top_n,omitempty"`
}

// ReloadResponse is the body returned by POST /admin/reload-providers.
type ReloadResponse struct {
	Providers int    `json:"providers"`
	Status    string `json:"status"`
}
