package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/quietpage/quietpage/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorMessage extracts the server's uniform JSON error body when present,
// falling back to the raw body or the status text.
func errorMessage(resp *resty.Response) string {
	raw := strings.TrimSpace(string(resp.Body()))

	var parsed models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err == nil && parsed.Error != "" {
		return parsed.Error
	}

	if raw == "" {
		return http.StatusText(resp.StatusCode())
	}
	return raw
}
