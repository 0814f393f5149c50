package dto

// SearchResult is one autocomplete suggestion. Label is what pickers render,
// Value is the identifier submitted back.
type SearchResult struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SearchResponse wraps autocomplete suggestions.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
