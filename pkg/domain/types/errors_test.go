package types_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/tibvdm/hookset/pkg/domain/types"
)

func TestExitCode(t *testing.T) {
	gt.Equal(t, types.ExitCode(nil), 0)
	gt.Equal(t, types.ExitCode(errors.New("some failure")), 1)
	gt.Equal(t, types.ExitCode(goerr.New("no source", goerr.T(types.TagSourceMissing))), 1)
	gt.Equal(t, types.ExitCode(goerr.New("no destination", goerr.T(types.TagDestinationMissing))), 1)
	gt.Equal(t, types.ExitCode(goerr.New("copy broke", goerr.T(types.TagCopyFailed))), 2)
}
