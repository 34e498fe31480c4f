package models

// ErrorResponse represents the JSON body of every error response
// Example: {"error": "NOT_FOUND", "message": "Product not found", "redirect": "/catalog/findings"}
type ErrorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	Details  string `json:"details,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}
