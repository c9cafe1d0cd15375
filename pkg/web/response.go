// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into json friendly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a human readable message for a failed binding validation.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " field must be greater or equal to " + fe.Param()
	case "max":
		return " field must be less than or equal to " + fe.Param()
	case "gt":
		return " field must be greater than " + fe.Param()
	case "len":
		return " field must be exactly " + fe.Param() + " characters long"
	case "hexadecimal":
		return " field must be a hexadecimal string"
	case "accnumber":
		return " field must be a 10-digit account number"
	default:
		return " field is invalid"
	}
}
