package snippetreq

// RecordSnippetRequest stores one analyzed snippet in the user's recents.
type RecordSnippetRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language"`
}
