package utils

import (
	"encoding/base64"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces unique activity ids
type IDGenerator struct{}

// NewIDGenerator creates a new id generator
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// NewActivityID generates a session-unique activity id. UUID v4 with the
// hyphens stripped, prefixed so ids are recognizable in logs and URLs.
func (g *IDGenerator) NewActivityID() string {
	return "act-" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Validator provides input validation helpers
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

var controlChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)

// SanitizeInput sanitizes user input. Newlines and tabs survive because
// activity notes are multi-line text.
func (v *Validator) SanitizeInput(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")
	input = controlChars.ReplaceAllString(input, "")

	return strings.TrimSpace(input)
}

// SanitizeUpdate applies SanitizeInput to a set of optional field slots,
// leaving nil slots alone.
func (v *Validator) SanitizeUpdate(slots ...*string) {
	for _, s := range slots {
		if s != nil {
			*s = v.SanitizeInput(*s)
		}
	}
}

// BuildDataURI wraps raw bytes as a self-contained inline image source,
// sniffing the content type when none is supplied.
func BuildDataURI(contentType string, data []byte) string {
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// APIResponse is the common response envelope
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// NewSuccessResponse creates a success API response
func NewSuccessResponse(data interface{}, message string) *APIResponse {
	return &APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates an error API response
func NewErrorResponse(error string) *APIResponse {
	return &APIResponse{
		Success: false,
		Error:   error,
	}
}
