package problemdetails

import "fmt"

const (
	TypeNotFound        = "not-found"
	TypeInternalError   = "internal-error"
	TypeValidationError = "validation-error"
)

// ProblemDetail is an RFC 7807 error payload. It implements error so logic
// layers can return it directly and the HTTP error handler can unwrap it.
type ProblemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func New(status int, problemType, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   fmt.Sprintf("https://api.example.com/problems/%s", problemType),
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

func (p *ProblemDetail) Error() string {
	return fmt.Sprintf("%s: %s", p.Title, p.Detail)
}
