package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/Norgate-AV/winarea/internal/geom"
	"github.com/Norgate-AV/winarea/internal/match"
	"github.com/Norgate-AV/winarea/internal/resolver"
)

// printer renders command results as text or as a stream of YAML documents
type printer struct {
	w      io.Writer
	format string
	enc    *yaml.Encoder
}

func newPrinter(w io.Writer, format string) *printer {
	p := &printer{w: w, format: format}
	if format == OutputYAML {
		p.enc = yaml.NewEncoder(w)
		p.enc.SetIndent(2)
	}

	return p
}

// Emit writes v as YAML, or calls text in text mode
func (p *printer) Emit(v any, text func(w io.Writer)) error {
	if p.enc != nil {
		if err := p.enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}

		return nil
	}

	text(p.w)
	return nil
}

func (p *printer) Close() {
	if p.enc != nil {
		_ = p.enc.Close()
	}
}

// areaView is the serialised form of a geom.Area
type areaView struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func viewArea(a geom.Area) areaView {
	return areaView{X: a.X(), Y: a.Y(), W: a.W(), H: a.H()}
}

func viewAreaPtr(a geom.Area, ok bool) *areaView {
	if !ok {
		return nil
	}

	v := viewArea(a)
	return &v
}

type targetView struct {
	Hwnd  string `yaml:"hwnd"`
	Pid   uint32 `yaml:"pid,omitempty"`
	Title string `yaml:"title,omitempty"`
	Class string `yaml:"class,omitempty"`
	Exe   string `yaml:"exe,omitempty"`
}

func viewTarget(t match.Target) targetView {
	return targetView{
		Hwnd:  formatHwnd(t.Hwnd),
		Pid:   t.Pid,
		Title: t.Title,
		Class: t.Class,
		Exe:   t.Exe,
	}
}

// resolutionView is everything known about one resolved window
type resolutionView struct {
	Window     *targetView `yaml:"window,omitempty"`
	Branch     string      `yaml:"branch"`
	Raw        areaView    `yaml:"raw"`
	Client     *areaView   `yaml:"client,omitempty"`
	Region     *areaView   `yaml:"region,omitempty"`
	Logical    areaView    `yaml:"logical"`
	Borderless *areaView   `yaml:"borderless,omitempty"`
	Rule       string      `yaml:"rule,omitempty"`
}

func viewResolution(m resolver.Measurements, r resolver.Resolution) resolutionView {
	v := resolutionView{
		Branch:     r.Branch.String(),
		Raw:        viewArea(r.Raw),
		Client:     viewAreaPtr(m.Client, true),
		Region:     viewAreaPtr(m.Region, m.HasRegion),
		Logical:    viewArea(r.Logical),
		Borderless: viewAreaPtr(r.Borderless, r.Rule != ""),
		Rule:       r.Rule,
	}

	if m.Target.Hwnd != 0 {
		t := viewTarget(m.Target)
		v.Window = &t
	}

	return v
}

func (v resolutionView) writeText(w io.Writer) {
	if v.Window != nil {
		fmt.Fprintf(w, "window:     %s %q\n", v.Window.Hwnd, v.Window.Title)
	}

	fmt.Fprintf(w, "branch:     %s\n", v.Branch)
	fmt.Fprintf(w, "raw:        %s\n", formatAreaView(&v.Raw))

	if v.Client != nil {
		fmt.Fprintf(w, "client:     %s\n", formatAreaView(v.Client))
	}

	if v.Region != nil {
		fmt.Fprintf(w, "region:     %s\n", formatAreaView(v.Region))
	}

	fmt.Fprintf(w, "logical:    %s\n", formatAreaView(&v.Logical))

	if v.Borderless != nil {
		fmt.Fprintf(w, "borderless: %s (rule %s)\n", formatAreaView(v.Borderless), v.Rule)
	}
}

func formatAreaView(v *areaView) string {
	return geom.NewArea(v.X, v.Y, v.W, v.H).String()
}

func formatHwnd(hwnd uintptr) string {
	return fmt.Sprintf("0x%X", hwnd)
}

// writeHeader prints a bold table header
func writeHeader(w io.Writer, format string, args ...any) {
	_, _ = color.New(color.Bold).Fprintf(w, format, args...)
}

// terminalWidth returns the width of w when it is a terminal, or 0
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}

	return width
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}

	if n <= 3 {
		return string(r[:n])
	}

	return string(r[:n-3]) + "..."
}
