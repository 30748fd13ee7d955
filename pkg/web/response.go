// Package web defines common components for a web application.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Message string `json:"message"`
}

// Error wraps a given err into json frinedly struct.
func Error(err error) JSONError {
	return JSONError{Message: err.Error()}
}

// Message wraps a plain message into json friendly struct.
func Message(msg string) JSONError {
	return JSONError{Message: msg}
}

// GetErrorMsg converts the first validation error into a human readable message.
func GetErrorMsg(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return ""
	}

	fe := ve[0]

	switch fe.Tag() {
	case "required":
		return fe.Field() + " field is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "numeric":
		return fe.Field() + " must contain only digits"
	}

	return fe.Field() + " is invalid"
}

// BindErrorMsg converts an error returned by request binding into a human readable message.
func BindErrorMsg(err error) string {
	var (
		ve  validator.ValidationErrors
		ute *json.UnmarshalTypeError
		se  *json.SyntaxError
	)

	switch {
	case errors.As(err, &ve):
		return GetErrorMsg(ve)
	case errors.As(err, &ute):
		if ute.Field == "" {
			return "request body must be a JSON object"
		}
		return fmt.Sprintf("%s must be a %s", ute.Field, ute.Type)
	case errors.As(err, &se):
		return "request body is not valid JSON"
	case errors.Is(err, io.EOF):
		return "request body is empty"
	}

	return err.Error()
}
