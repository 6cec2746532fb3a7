package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/renato0307/gitdash/internal/domain"
)

// maxBodyBytes bounds mutation request bodies
const maxBodyBytes = 1 << 20

// RepoRequest is the body of mutations that take no arguments
type RepoRequest struct {
	Repo string `json:"repo"`
}

// CheckoutRequest is the body of POST /api/checkout
type CheckoutRequest struct {
	Branch string `json:"branch" validate:"required"`
	Create bool   `json:"create"`
	Repo   string `json:"repo"`
}

// CommitRequest is the body of POST /api/commit
type CommitRequest struct {
	Message string `json:"message" validate:"required"`
	Repo    string `json:"repo"`
}

// FileStageRequest is the body of POST /api/file-stage
type FileStageRequest struct {
	File  string `json:"file" validate:"required"`
	Repo  string `json:"repo"`
	Stage bool   `json:"stage"`
}

// FileTrackRequest is the body of POST /api/file-track
type FileTrackRequest struct {
	File  string `json:"file" validate:"required"`
	Repo  string `json:"repo"`
	Track bool   `json:"track"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse is the body of GET /api/version
type VersionResponse struct {
	Version string `json:"version"`
}

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status string `json:"status"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names in validation messages
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeRequest reads an optional JSON body into dst and validates it.
// Decoding and validation failures are returned as *domain.ValidationError.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", fmt.Sprintf("invalid JSON body: %v", err))
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			field := fieldErrors[0].Field()
			return domain.NewValidationError(field, fmt.Sprintf("%s is required", field))
		}
		return domain.NewValidationError("body", err.Error())
	}
	return nil
}
