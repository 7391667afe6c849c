package model

import (
	"fmt"

	apperrors "github.com/depscout/depscout/internal/errors"
)

// PackageDescriptor identifies one package in a submission: a name and version
// within an ecosystem (package-manager) registry. Version format is
// ecosystem-specific and not validated for semantic correctness.
type PackageDescriptor struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Type    string `json:"type"`
}

// SubmitRequest is the body of PUT /request/packages.
type SubmitRequest struct {
	Packages []PackageDescriptor `json:"packages"`
}

// Validate checks the submission shape: a packages list whose entries each
// carry non-empty name, version, and type. Validation is purely structural and
// stops at the first violation, reporting its JSON path.
func (r *SubmitRequest) Validate() error {
	if r.Packages == nil {
		return apperrors.ValidationField("packages", "packages is required")
	}
	for i, p := range r.Packages {
		switch {
		case p.Name == "":
			return apperrors.ValidationField(descriptorField(i, "name"), "name is required")
		case p.Version == "":
			return apperrors.ValidationField(descriptorField(i, "version"), "version is required")
		case p.Type == "":
			return apperrors.ValidationField(descriptorField(i, "type"), "type is required")
		}
	}
	return nil
}

func descriptorField(idx int, name string) string {
	return fmt.Sprintf("packages[%d].%s", idx, name)
}

// SubmitResponse is the body of a successful submission.
type SubmitResponse struct {
	JobID string `json:"job_id"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Validate checks that both credential fields are present.
func (r *LoginRequest) Validate() error {
	if r.Login == "" {
		return apperrors.ValidationField("login", "login is required")
	}
	if r.Password == "" {
		return apperrors.ValidationField("password", "password is required")
	}
	return nil
}

// TokenPair carries the opaque bearer tokens issued on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
