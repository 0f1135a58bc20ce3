//go:build !windows

package cmd

import (
	"errors"

	"github.com/Norgate-AV/winarea/internal/interfaces"
	"github.com/Norgate-AV/winarea/internal/logger"
)

// ErrUnsupportedPlatform is returned by commands that need a live desktop
var ErrUnsupportedPlatform = errors.New("unsupported platform: live window commands require Windows")

func platformBackend(_ logger.LoggerInterface) (interfaces.Desktop, error) {
	return nil, ErrUnsupportedPlatform
}
