//go:build !unix && !windows

package fs

import (
	"errors"
	iofs "io/fs"
)

func isAccessDenied(err error) bool {
	return errors.Is(err, iofs.ErrPermission)
}
