package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Role       string `validate:"required,tenant_role"`
	Permission string `validate:"omitempty,permission"`
	ModuleID   string `validate:"omitempty,module_id"`
	Status     string `validate:"omitempty,release_status"`
	Slug       string `validate:"omitempty,slug"`
}

func TestValidateAcceptsDomainValues(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{
		Role:       "member",
		Permission: "findings:read",
		ModuleID:   "scope",
		Status:     "coming_soon",
		Slug:       "acme-corp-2",
	})
	assert.NoError(t, err)
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{
		Role:       "superuser",
		Permission: "findings:obliterate",
		ModuleID:   "time_travel",
		Status:     "alpha",
		Slug:       "Not A Slug",
	})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 5)

	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		fields[e.Field] = e.Message
	}
	assert.Contains(t, fields["role"], "owner, admin, member, viewer")
	assert.Contains(t, fields["status"], "coming_soon")
}

func TestValidateRequiredRole(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "role", verrs[0].Field)
	assert.Equal(t, "is required", verrs[0].Message)
}

func TestSlugs(t *testing.T) {
	v := New()

	valid := []string{"a", "acme", "acme-corp", "a1-b2-c3"}
	for _, s := range valid {
		assert.NoError(t, v.Var(s, "slug"), "slug %q", s)
	}

	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "UPPER", "with space"}
	for _, s := range invalid {
		assert.Error(t, v.Var(s, "slug"), "slug %q", s)
	}
}
