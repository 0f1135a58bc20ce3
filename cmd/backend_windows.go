//go:build windows

package cmd

import (
	"github.com/Norgate-AV/winarea/internal/interfaces"
	"github.com/Norgate-AV/winarea/internal/logger"
	"github.com/Norgate-AV/winarea/internal/windows"
)

func platformBackend(log logger.LoggerInterface) (interfaces.Desktop, error) {
	return windows.NewWindowsAPI(log), nil
}
