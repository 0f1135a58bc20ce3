// Package match selects top-level windows by handle, process or text.
package match

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoMatch is returned when no window satisfies a selector
var ErrNoMatch = errors.New("no window matches")

// Target describes a top-level window as seen by the selectors
type Target struct {
	Hwnd  uintptr
	Pid   uint32
	Title string
	Class string
	Exe   string // full image path of the owning process, if known
}

// Kind is the field a Selector tests
type Kind string

const (
	KindHwnd  Kind = "hwnd"
	KindPid   Kind = "pid"
	KindTitle Kind = "title"
	KindClass Kind = "class"
	KindExe   Kind = "exe"
)

// dialogClass is the window class of standard Win32 dialogs
const dialogClass = "#32770"

// Selector matches Targets on a single field. Text kinds use a regular
// expression; hwnd and pid compare numerically.
type Selector struct {
	kind Kind
	raw  string
	re   *regexp.Regexp
	num  uint64
}

// Parse reads a selector of the form "kind:value". A value without a
// recognised kind prefix is a case-insensitive title pattern.
//
//	hwnd:0x1A2B   pid:4120   title:^Untitled   class:Notepad   exe:notepad\.exe$
func Parse(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, fmt.Errorf("empty selector")
	}

	kind, value := KindTitle, "(?i)"+s
	if k, v, ok := strings.Cut(s, ":"); ok {
		switch Kind(strings.ToLower(k)) {
		case KindHwnd, KindPid, KindTitle, KindClass, KindExe:
			kind, value = Kind(strings.ToLower(k)), v
		}
	}

	sel := Selector{kind: kind, raw: s}

	switch kind {
	case KindHwnd, KindPid:
		n, err := strconv.ParseUint(strings.TrimSpace(value), 0, 64)
		if err != nil {
			return Selector{}, fmt.Errorf("selector %q: invalid %s: %w", s, kind, err)
		}

		sel.num = n
	default:
		re, err := regexp.Compile(value)
		if err != nil {
			return Selector{}, fmt.Errorf("selector %q: %w", s, err)
		}

		sel.re = re
	}

	return sel, nil
}

// MustParse is Parse for selectors known at compile time
func MustParse(s string) Selector {
	sel, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return sel
}

// Kind returns the field the selector tests
func (s Selector) Kind() Kind {
	return s.kind
}

func (s Selector) String() string {
	return s.raw
}

// Match reports whether t satisfies the selector
func (s Selector) Match(t Target) bool {
	switch s.kind {
	case KindHwnd:
		return uint64(t.Hwnd) == s.num
	case KindPid:
		return uint64(t.Pid) == s.num
	case KindTitle:
		return s.re.MatchString(t.Title)
	case KindClass:
		return s.re.MatchString(t.Class)
	case KindExe:
		return t.Exe != "" && (s.re.MatchString(t.Exe) || s.re.MatchString(exeBase(t.Exe)))
	default:
		return false
	}
}

// exeBase strips the directory from an image path with either separator
func exeBase(path string) string {
	return path[strings.LastIndexAny(path, `\/`)+1:]
}

// Filter returns every target the selector matches, in order
func Filter(targets []Target, sel Selector) []Target {
	var out []Target

	for _, t := range targets {
		if sel.Match(t) {
			out = append(out, t)
		}
	}

	return out
}

// Find returns the best target for sel.
//
// Selectors naming a handle return that window. Otherwise titled windows are
// preferred over untitled ones and dialogs are only chosen when nothing else
// matched, so "pid:1234" lands on the application's main window.
func Find(targets []Target, sel Selector) (Target, error) {
	candidates := Filter(targets, sel)
	if len(candidates) == 0 {
		return Target{}, fmt.Errorf("%w %q", ErrNoMatch, sel)
	}

	if sel.kind == KindHwnd || sel.kind == KindClass {
		return candidates[0], nil
	}

	var untitled, dialog *Target

	for i := range candidates {
		c := &candidates[i]

		switch {
		case c.Class == dialogClass:
			if dialog == nil {
				dialog = c
			}
		case c.Title == "":
			if untitled == nil {
				untitled = c
			}
		default:
			return *c, nil
		}
	}

	if untitled != nil {
		return *untitled, nil
	}

	return *dialog, nil
}
