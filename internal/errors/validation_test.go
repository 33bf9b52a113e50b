package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorMessageIsSorted() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("title", "", vb)
	errors.ValidateNonNegative("cooldown", -1, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Equal("validation failed: cooldown: must not be negative; title: is required", errors.GetMessage(err))
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "Boomer", vb)
	errors.ValidateNonNegative("cooldown", 0, vb)

	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "present", value: "Boomer", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "whitespace only", value: "   ", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("name", tc.value, vb)
			err := vb.Build()
			if tc.wantErr {
				s.Require().Error(err)
				s.True(errors.IsInvalidArgument(err))
				s.Contains(err.Error(), "name: is required")
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("stat", "mana", []string{"life", "attack"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "must be one of: life, attack")

	meta := errors.GetMeta(err)
	s.Require().NotNil(meta)
	s.Contains(meta, "validation_errors")
}
