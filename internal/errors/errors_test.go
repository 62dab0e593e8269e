package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqhypo/domain/core"
)

func TestWrap_MapsDomainSentinels(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{core.ErrUndefinedHypothesis, CodeUndefinedHypothesis},
		{core.NewWindowError(3, 1), CodeInvalidWindow},
		{core.NewStepConfigError("odd base"), CodeInvalidInput},
		{fmt.Errorf("probe: %w", core.ErrRangeOverflow), CodeReconstructionFailed},
		{stderrors.New("boom"), CodeInternalError},
		{ConfigInvalid("bad"), CodeConfigInvalid},
	}
	for _, tt := range tests {
		wrapped := Wrap(tt.err, "context")
		assert.Equal(t, tt.code, GetCode(wrapped), "err=%v", tt.err)
		assert.True(t, stderrors.Is(wrapped, tt.err))
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "x"))
	assert.Nil(t, Wrapf(nil, "x %d", 1))
	assert.Nil(t, WithCode(CodeInternalError, nil))
}

func TestAppError_Message(t *testing.T) {
	err := Wrapf(stderrors.New("disk full"), "write %s", "out.xlsx")
	assert.Equal(t, "write out.xlsx: disk full", err.Error())
	assert.True(t, IsAppError(fmt.Errorf("outer: %w", err)))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeInvalidWindow, InvalidInput("bad M"))
	assert.Equal(t, CodeInvalidWindow, GetCode(err))
	assert.Equal(t, "bad M", err.Error())

	io := IOError("cases.yaml", stderrors.New("missing"))
	assert.Equal(t, CodeIOError, io.Code)
	assert.Contains(t, io.Error(), "cases.yaml")
}
