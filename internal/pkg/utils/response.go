package utils

import (
	"errors"
	"net/http"

	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/dto/responses"
	"ogec-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildRedirectResponse answers 2xx with a client-side navigation target.
// The SPA performs the actual route change; the gateway only names it.
func BuildRedirectResponse(w http.ResponseWriter, code int, message, redirect string, data interface{}) {
	response := responses.ResponseDTO{
		Success:  true,
		Message:  message,
		Data:     data,
		Redirect: redirect,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		location := map[string]interface{}{
			"file":          customErr.Location.File,
			"line":          customErr.Location.Line,
			"function_name": customErr.Location.FunctionName,
		}
		log.Error(customErr.DevMessage,
			zap.Any("location", location),
		)
	} else {
		log.Error(err.Error())
	}

	response := responses.ResponseDTO{
		Success: false,
		Message: clientMessage,
	}
	// A 401 always carries the login route so the SPA can perform the
	// forced redirect without special-casing which screen made the call.
	if code == constvars.StatusUnauthorized {
		response.Redirect = constvars.LoginPath
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
