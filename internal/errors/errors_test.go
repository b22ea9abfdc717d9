package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-forge-discord/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	err := errors.New(errors.CodeNotFound, "class not found")

	s.Assert().Equal(errors.CodeNotFound, err.Code)
	s.Assert().Equal("class not found", err.Message)
	s.Assert().Equal("class not found", err.Error())
}

func (s *ErrorsTestSuite) TestErrorWithCause() {
	cause := fmt.Errorf("connection refused")
	err := errors.Wrap(cause, "failed to fetch spell list")

	s.Assert().Equal("failed to fetch spell list: connection refused", err.Error())
	s.Assert().Equal(cause, err.Unwrap())
	s.Assert().Equal(errors.CodeUnknown, err.Code)
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("equipment not found").
		WithMeta("item_key", "longsword").
		WithMeta("draft_id", "draft_123")

	s.Assert().Equal("longsword", err.Meta["item_key"])
	s.Assert().Equal("draft_123", err.Meta["draft_id"])
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.Validation("point budget not exhausted")
	wrapped := errors.Wrap(inner, "cannot advance")

	s.Assert().Equal(errors.CodeValidation, wrapped.Code)
	s.Assert().True(errors.IsValidation(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "anything"))
	s.Assert().Nil(errors.Wrapf(nil, "anything %s", "formatted"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "anything"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	cause := fmt.Errorf("redis: connection pool timeout")
	err := errors.WrapWithCode(cause, errors.CodeUnavailable, "draft store unreachable")

	s.Assert().Equal(errors.CodeUnavailable, err.Code)
	s.Assert().True(errors.IsUnavailable(err))
	s.Assert().Contains(err.Error(), "connection pool timeout")
}

func (s *ErrorsTestSuite) TestCodeCheckers() {
	testCases := []struct {
		name    string
		err     *errors.Error
		checker func(error) bool
	}{
		{"not found", errors.NotFoundf("race %s not found", "elf"), errors.IsNotFound},
		{"invalid argument", errors.InvalidArgument("draft ID is required"), errors.IsInvalidArgument},
		{"already exists", errors.AlreadyExists("draft already exists"), errors.IsAlreadyExists},
		{"internal", errors.Internal("unexpected state"), errors.IsInternal},
		{"unavailable", errors.Unavailable("catalog unreachable"), errors.IsUnavailable},
		{"validation", errors.Validationf("%d skills required", 2), errors.IsValidation},
		{"missing dependency", errors.MissingDependency("class must be chosen first"), errors.IsMissingDependency},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().True(tc.checker(tc.err))
			s.Assert().False(tc.checker(fmt.Errorf("plain error")))
		})
	}
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeValidation, errors.GetCode(errors.Validation("x")))
	s.Assert().Equal(errors.CodeUnknown, errors.GetCode(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	err := errors.MissingDependency("no class selected").WithMeta("stage", "spells")

	meta := errors.GetMeta(err)
	s.Require().NotNil(meta)
	s.Assert().Equal("spells", meta["stage"])
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestWrapCopiesMeta() {
	inner := errors.NotFound("item missing").WithMeta("item_key", "shield")
	wrapped := errors.Wrap(inner, "resolve equipment")

	wrapped.WithMeta("group", "weapon-choice")

	s.Assert().Equal("shield", wrapped.Meta["item_key"])
	s.Assert().NotContains(inner.Meta, "group")
}
