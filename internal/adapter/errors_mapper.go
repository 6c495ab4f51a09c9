package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/subfinder-client/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) *ResponseError {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := resp.Body()
	message := errorMessage(body)

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusTooManyRequests:
		sentinel = ErrTooManyRequests
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusServiceUnavailable:
		sentinel = ErrServiceUnavailable
	default:
		sentinel = ErrUnexpectedStatus
	}

	detail := strings.TrimSpace(string(body))
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	return &ResponseError{
		StatusCode: resp.StatusCode(),
		Body:       body,
		Message:    message,
		Err:        fmt.Errorf("%w: %s", sentinel, detail),
	}
}

// errorMessage extracts the "error" field of a JSON error body. Anything else
// (empty body, plain text, non-string field) yields DefaultErrorMessage.
func errorMessage(body []byte) string {
	var errBody models.ErrorBody
	if err := json.Unmarshal(body, &errBody); err != nil {
		return DefaultErrorMessage
	}

	if errBody.Error == "" {
		return DefaultErrorMessage
	}

	return errBody.Error
}
