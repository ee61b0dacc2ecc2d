package types

// ErrorResponse documents the body the error middleware writes.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code"`
}

// ViewPreferencesResponse is a saved filter/sort selection for one view.
type ViewPreferencesResponse struct {
	ViewID  string      `json:"viewId"`
	Filters TripFilters `json:"filters"`
}
