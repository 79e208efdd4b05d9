package common

import (
	"net/http"

	"go-bank-console/logger"

	"github.com/sirupsen/logrus"
)

// AppError is a failure that escapes a view and ends the request.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Send logs the internal error, if any, and writes Message as a plain-text
// response with Code.
func (e *AppError) Send(w http.ResponseWriter, fields logrus.Fields) {
	if e.Err != nil {
		logger.Log.WithFields(fields).WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	http.Error(w, e.Message, e.Code)
}
