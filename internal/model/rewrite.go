package model

// RewriteRequest represents a message rewrite request.
type RewriteRequest struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

// RewriteResult holds a rewritten message plus the classification that
// produced it.
type RewriteResult struct {
	Style   string `json:"style"`
	Intent  string `json:"intent"`
	Message string `json:"message"`
}

// RewriteResponse wraps a RewriteResult in the standard success envelope.
type RewriteResponse struct {
	Success bool          `json:"success"`
	Result  RewriteResult `json:"result"`
}
