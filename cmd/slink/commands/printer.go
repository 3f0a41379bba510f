package commands

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/slink/internal/app"
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/engine/resolver"
	"go.trai.ch/slink/internal/ui/output"
	"go.trai.ch/slink/internal/ui/style"
)

// printer renders command results for terminals. Color degrades with the
// detected profile; NO_COLOR yields plain text.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)
	return &printer{w: w}
}

func (p *printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) ok(text string) {
	p.printf("%s %s\n", style.Injected.Render(style.Check), text)
}

// scanReport renders one line per plugin and a closing summary.
func (p *printer) scanReport(report *app.ScanReport) {
	if len(report.Results) == 0 {
		p.printf("%s\n", style.Muted.Render("No plugins installed"))
		return
	}

	var injected, present, missing int
	for _, res := range report.Results {
		switch res.Outcome {
		case app.OutcomeInjected:
			injected++
			urls := resolver.ExtractHrefs(res.Links)
			p.printf("%s %s %s %s\n",
				style.Injected.Render(style.Check),
				style.Basename.Render(res.Basename),
				style.Muted.Render(style.Arrow),
				style.URL.Render(strings.Join(urls, " ")))
		case app.OutcomeAlreadyPresent:
			present++
			p.printf("%s %s %s\n",
				style.Muted.Render(style.Dot),
				style.Basename.Render(res.Basename),
				style.Muted.Render("already linked"))
		case app.OutcomeMissing:
			missing++
			p.printf("%s %s %s\n",
				style.Missing.Render(style.Cross),
				style.Basename.Render(res.Basename),
				style.Muted.Render("no settings page found"))
		}
	}

	p.printf("\n%s\n", style.Muted.Render(
		strconv.Itoa(injected)+" injected, "+
			strconv.Itoa(present)+" already linked, "+
			strconv.Itoa(missing)+" missing"))
}

func (p *printer) cacheStatus(status *app.CacheStatus) {
	p.printf("%s %s\n", style.Muted.Render("Backend:"), status.Backend)
	p.cacheLine("Menu catalog", status.MenuKey, status.MenuCached)
	p.cacheLine("Plugin inventory", status.PluginKey, status.PluginsCached)
}

func (p *printer) cacheLine(label, key string, cached bool) {
	icon := style.Muted.Render(style.Dot)
	state := style.Muted.Render("empty")
	if cached {
		icon = style.Injected.Render(style.Check)
		state = style.Injected.Render("cached")
	}
	p.printf("%s %s %s %s\n", icon, label, style.Muted.Render("("+key+")"), state)
}

func (p *printer) overrides(overrides domain.Overrides) {
	if len(overrides) == 0 {
		p.printf("%s\n", style.Muted.Render("No overrides stored"))
		return
	}
	for _, basename := range slices.Sorted(maps.Keys(overrides)) {
		p.printf("%s %s %s\n",
			style.Basename.Render(basename),
			style.Muted.Render(style.Arrow),
			style.URL.Render(strings.Join(overrides[basename], ", ")))
	}
}

func (p *printer) overrideSet(basename string, added, rejected []string) {
	for _, url := range added {
		p.printf("%s %s %s %s\n",
			style.Injected.Render(style.Check),
			style.Basename.Render(basename),
			style.Muted.Render(style.Arrow),
			style.URL.Render(url))
	}
	for _, reason := range rejected {
		p.printf("%s %s\n",
			style.Rejected.Render(style.Warning),
			style.Rejected.Render("rejected "+reason))
	}
	if len(added) == 0 {
		p.printf("%s\n", style.Muted.Render("No valid URLs, override entry removed"))
	}
}
