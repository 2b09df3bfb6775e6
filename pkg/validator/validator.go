// Package validator provides struct validation utilities with custom
// validators for the console's domain values.
package validator

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/secposture/console-api/pkg/domain/module"
	"github.com/secposture/console-api/pkg/domain/permission"
	"github.com/secposture/console-api/pkg/domain/tenant"
)

// slugRegex validates slugs: lowercase letters, numbers, hyphens.
// Must start and end with alphanumeric, no consecutive hyphens.
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validator wraps the go-playground validator with custom validations.
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single field validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, e := range v {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return sb.String()
}

// New creates a new Validator with custom validators registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("tenant_role", validateTenantRole)
	_ = v.RegisterValidation("permission", validatePermission)
	_ = v.RegisterValidation("module_id", validateModuleID)
	_ = v.RegisterValidation("release_status", validateReleaseStatus)
	_ = v.RegisterValidation("slug", validateSlug)

	return &Validator{validate: v}
}

// Validate validates a struct and returns field-level errors.
func (v *Validator) Validate(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if stderrors.As(err, &invalid) {
		return fmt.Errorf("invalid validation target: %w", err)
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageForTag(fe),
		})
	}
	return errs
}

// Var validates a single value against a tag expression.
func (v *Validator) Var(value any, tag string) error {
	return v.validate.Var(value, tag)
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "tenant_role":
		return "must be one of: owner, admin, member, viewer"
	case "permission":
		return "must be a known permission"
	case "module_id":
		return "must be a known module"
	case "release_status":
		return "must be one of: released, coming_soon, beta, deprecated"
	case "slug":
		return "must be a lowercase slug (letters, numbers, hyphens)"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func validateTenantRole(fl validator.FieldLevel) bool {
	return tenant.Role(fl.Field().String()).IsValid()
}

func validatePermission(fl validator.FieldLevel) bool {
	return permission.Permission(fl.Field().String()).IsValid()
}

func validateModuleID(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case module.ModuleDashboard, module.ModuleAssets, module.ModuleScope,
		module.ModuleFindings, module.ModuleCredentials, module.ModuleRemediation,
		module.ModuleScans, module.ModuleReports, module.ModuleAudit,
		module.ModuleTeam, module.ModuleIntegrations, module.ModuleBilling:
		return true
	}
	return false
}

func validateReleaseStatus(fl validator.FieldLevel) bool {
	return module.ReleaseStatus(fl.Field().String()).IsValid()
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}
