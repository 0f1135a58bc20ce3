package cmd

import (
	"errors"
	"log/slog"

	"github.com/Norgate-AV/winarea/internal/interfaces"
	"github.com/Norgate-AV/winarea/internal/match"
	"github.com/Norgate-AV/winarea/internal/resolver"
)

const selectorHelp = `A selector is one of hwnd:<handle>, pid:<id>, title:<regexp>, class:<regexp>
or exe:<regexp>. A bare string is a case-insensitive title regexp.`

// openWindow finds the window named by selector on the live desktop
func (a *app) openWindow(selector string) (*resolver.Window, interfaces.Desktop, match.Target, error) {
	sel, err := match.Parse(selector)
	if err != nil {
		return nil, nil, match.Target{}, err
	}

	desktop, err := a.desktop()
	if err != nil {
		return nil, nil, match.Target{}, err
	}

	target, err := match.Find(desktop.EnumerateWindows(), sel)
	if err != nil {
		return nil, nil, match.Target{}, err
	}

	a.log.Debug("Selected window",
		slog.String("selector", sel.String()),
		slog.String("hwnd", formatHwnd(target.Hwnd)),
		slog.String("title", target.Title),
		slog.String("class", target.Class),
	)

	return resolver.NewWindow(target.Hwnd, desktop, a.rules, a.log), desktop, target, nil
}

// explainSetFailure adds a hint when a write most likely failed because of UIPI
func (a *app) explainSetFailure(err error, desktop interfaces.Desktop) error {
	if errors.Is(err, resolver.ErrSetFailed) && !desktop.IsElevated() {
		a.log.Warn("Moving windows of elevated processes requires running winarea as administrator")
	}

	return err
}
