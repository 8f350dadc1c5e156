package dto

// SearchItem is one web search result, real or mock.
type SearchItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// SearchResponse mirrors the provider's {items: [...]} shape so real and
// fallback results are indistinguishable to the caller.
type SearchResponse struct {
	Items []SearchItem `json:"items"`
}
