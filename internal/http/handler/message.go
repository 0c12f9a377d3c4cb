package handler

const oopsErr = "Oops! Something went wrong. Please try again later."
const internalErrMsg = "Internal server error"

// ErrorResponse is the error wire shape: a human-readable message plus
// optional structured detail.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
