// Package tui is the demo surface for the scrollcue engine: two marked-up
// containers (a horizontal card strip with item paging and a vertical log
// view) rendered with lipgloss, scrolled through bubbles, driven by a
// bubbletea program whose frame ticks pump the engine's scheduler.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scrollcue/internal/config"
	"scrollcue/internal/doc"
	"scrollcue/internal/engine"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cueStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	cardStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	overlayStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type keyMap struct {
	Quit      key.Binding
	StripBack key.Binding
	StripFwd  key.Binding
	LogUp     key.Binding
	LogDown   key.Binding
	LogTop    key.Binding
	LogBottom key.Binding
	Collapse  key.Binding
	Anim      key.Binding
	Debug     key.Binding
	Overlay   key.Binding
	Copy      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		StripBack: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev card")),
		StripFwd:  key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next card")),
		LogUp:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "log up")),
		LogDown:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "log down")),
		LogTop:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "log top")),
		LogBottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "log bottom")),
		Collapse:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse strip")),
		Anim:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "animation mode")),
		Debug:     key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "debug logs")),
		Overlay:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "state diff")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy state")),
	}
}

// diagBuffer collects engine diagnostics for the footer.
type diagBuffer struct {
	lines []string
}

func (b *diagBuffer) add(line string) {
	b.lines = append(b.lines, line)
	if len(b.lines) > 50 {
		b.lines = b.lines[len(b.lines)-50:]
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	eng      *engine.Engine
	document *doc.Document
	sched    *engine.ManualScheduler
	keys     keyMap
	diags    *diagBuffer

	strip *cardStrip
	log   *logRegion

	stripContainer *doc.Element
	stripRegionEl  *doc.Element
	stripStartEl   *doc.Element
	stripEndEl     *doc.Element
	logRegionEl    *doc.Element
	logStartEl     *doc.Element
	logEndEl       *doc.Element

	width, height int
	collapsed     bool
	showOverlay   bool
	overlay       string
	prevDump      string
	status        string
	lastTick      time.Time
}

func sampleLog(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%4d  region event sample: boundary sweep step %d\n", i, i)
	}
	return strings.TrimRight(b.String(), "\n")
}

func newModel(opts config.Options) model {
	m := model{
		document: doc.NewDocument(),
		sched:    engine.NewManualScheduler(),
		keys:     defaultKeyMap(),
		diags:    &diagBuffer{},
		width:    80,
		height:   24,
		lastTick: time.Now(),
	}
	m.document.SetSize(80, 24)
	m.document.EnableShowEvents()
	p := opts.Prefix

	cards := make([]string, 12)
	for i := range cards {
		cards[i] = fmt.Sprintf("card-%02d", i+1)
	}
	strip := newCardStrip(cards, 10, 60)
	m.strip = strip
	m.stripContainer = doc.NewElement("cards").SetAttr(p, "").SetAttr(p+"-click", "true")
	m.stripRegionEl = doc.NewElement("strip").SetAttr(p+"-axis", "horizontal")
	m.stripRegionEl.Scroll = strip
	m.stripStartEl = doc.NewElement("strip-prev").SetAttr(p+"-side", "start").SetAttr(p+"-distance", "next")
	m.stripEndEl = doc.NewElement("strip-next").SetAttr(p+"-side", "end").SetAttr(p+"-distance", "next")
	for i := range cards {
		idx := i
		item := doc.NewElement(cards[i]).SetAttr(p+"-item", "")
		item.Layout = func() doc.Rect { return strip.itemOffset(idx) }
		m.stripRegionEl.Append(item)
	}
	m.stripContainer.Append(m.stripStartEl, m.stripRegionEl, m.stripEndEl)

	m.log = newLogRegion(70, 14, sampleLog(120))
	logContainer := doc.NewElement("log").SetAttr(p, "").SetAttr(p+"-click", "true")
	m.logRegionEl = doc.NewElement("logview").SetAttr(p+"-axis", "vertical")
	m.logRegionEl.Scroll = m.log
	m.logStartEl = doc.NewElement("log-top").SetAttr(p+"-side", "start")
	m.logEndEl = doc.NewElement("log-bottom").SetAttr(p+"-side", "end")
	logContainer.Append(m.logStartEl, m.logRegionEl, m.logEndEl)

	m.document.Root.Append(m.stripContainer, logContainer)

	diags := m.diags
	m.eng = engine.New(m.document, opts,
		engine.WithScheduler(m.sched),
		engine.WithLogf(func(f string, a ...any) { diags.add(fmt.Sprintf(f, a...)) }))
	n := m.eng.Initialize()
	m.status = fmt.Sprintf("%d containers active", n)
	return m
}

// Run starts the demo program.
func Run(opts config.Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return tickCmd() }

// Layout rows, shared by View and mouse hit-testing.
func (m model) stripRow() int { return 2 }
func (m model) logTop() int   { return 4 }

func (m model) logHeight() int {
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	return h
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastTick)
		m.lastTick = now
		if m.strip.tick(dt) {
			m.stripRegionEl.Dispatch(doc.EventScroll)
		}
		if m.log.tick(dt) {
			m.logRegionEl.Dispatch(doc.EventScroll)
		}
		m.sched.Advance(dt)
		m.sched.Flush()
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.strip.width = maxInt(msg.Width-6, 10)
		m.log.vp.Width = maxInt(msg.Width-4, 20)
		m.log.vp.Height = m.logHeight()
		m.document.SetSize(float64(msg.Width), float64(msg.Height))
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.eng.Cleanup()
		return m, tea.Quit
	case key.Matches(msg, m.keys.StripFwd):
		m.stripEndEl.Dispatch(doc.EventActivate)
	case key.Matches(msg, m.keys.StripBack):
		m.stripStartEl.Dispatch(doc.EventActivate)
	case key.Matches(msg, m.keys.LogDown):
		m.log.vp.SetYOffset(m.log.vp.YOffset + 1)
		m.logRegionEl.Dispatch(doc.EventScroll)
	case key.Matches(msg, m.keys.LogUp):
		m.log.vp.SetYOffset(m.log.vp.YOffset - 1)
		m.logRegionEl.Dispatch(doc.EventScroll)
	case key.Matches(msg, m.keys.LogTop):
		m.logStartEl.Dispatch(doc.EventActivate)
	case key.Matches(msg, m.keys.LogBottom):
		m.logEndEl.Dispatch(doc.EventActivate)
	case key.Matches(msg, m.keys.Collapse):
		m.collapsed = !m.collapsed
		m.stripContainer.SetHidden(m.collapsed)
		if m.collapsed {
			// The next recompute finds the region unmeasurable and suspends it.
			m.eng.RefreshAll()
			m.status = "strip collapsed (container suspended)"
		} else {
			m.document.NotifyShown(m.stripRegionEl)
			m.status = "strip expanded (container resumed)"
		}
	case key.Matches(msg, m.keys.Anim):
		next := nextAnimation(m.eng.Configuration().Animation)
		if err := m.eng.UpdateConfiguration(config.Patch{Animation: &next}); err != nil {
			m.status = err.Error()
		} else {
			m.status = "animation: " + next
		}
	case key.Matches(msg, m.keys.Debug):
		dbg := !m.eng.Configuration().Debug
		_ = m.eng.UpdateConfiguration(config.Patch{Debug: &dbg})
		m.status = fmt.Sprintf("debug logs: %v", dbg)
	case key.Matches(msg, m.keys.Overlay):
		if !m.showOverlay {
			dump := m.eng.DumpState()
			m.overlay = renderStateDiff(m.prevDump, dump)
			m.prevDump = dump
		}
		m.showOverlay = !m.showOverlay
	case key.Matches(msg, m.keys.Copy):
		if err := clipboard.WriteAll(m.eng.DumpState()); err != nil {
			m.status = "copy failed: " + err.Error()
		} else {
			m.status = "state copied to clipboard"
		}
	}
	return m, nil
}

// handleMouse maps a left press on a rendered cue to its activate event.
func (m model) handleMouse(msg tea.MouseMsg) model {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}
	switch {
	case !m.collapsed && msg.Y == m.stripRow() && msg.X <= 1:
		m.stripStartEl.Dispatch(doc.EventActivate)
	case !m.collapsed && msg.Y == m.stripRow() && msg.X >= m.width-2:
		m.stripEndEl.Dispatch(doc.EventActivate)
	case msg.X >= m.width-2 && msg.Y == m.logTop():
		m.logStartEl.Dispatch(doc.EventActivate)
	case msg.X >= m.width-2 && msg.Y == m.logTop()+m.logHeight()-1:
		m.logEndEl.Dispatch(doc.EventActivate)
	}
	return m
}

func nextAnimation(cur string) string {
	switch cur {
	case "instant":
		return "eased"
	case "eased":
		return "smooth"
	default:
		return "instant"
	}
}

// cue renders an indicator glyph per its presentation classes: styled when
// visible, a layout-preserving blank when hidden or unclassified.
func (m model) cue(el *doc.Element, glyph string) string {
	if el.HasClass(m.eng.Configuration().VisibleClass) {
		return cueStyle.Render(glyph)
	}
	return strings.Repeat(" ", lipgloss.Width(glyph))
}

// stripWindow slices the rendered card row to the strip's viewport.
func stripWindow(cards []string, cardW int, offset, width int) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(fmt.Sprintf("%-*s", cardW, "["+c+"]"))
	}
	full := b.String()
	if offset < 0 {
		offset = 0
	}
	if offset >= len(full) {
		return ""
	}
	end := offset + width
	if end > len(full) {
		end = len(full)
	}
	return full[offset:end]
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("scrollcue demo") + "\n\n")

	if m.collapsed {
		b.WriteString(faintStyle.Render("▸ cards (collapsed, press c to expand)") + "\n")
	} else {
		row := stripWindow(m.strip.cards, m.strip.cardW, int(m.strip.offset+0.5), m.strip.width)
		b.WriteString(m.cue(m.stripStartEl, "‹") + " " + cardStyle.Render(row) + " " + m.cue(m.stripEndEl, "›") + "\n")
	}
	b.WriteString("\n")

	logLines := strings.Split(m.log.vp.View(), "\n")
	for i, ln := range logLines {
		cueCol := " "
		if i == 0 {
			cueCol = m.cue(m.logStartEl, "▲")
		} else if i == len(logLines)-1 {
			cueCol = m.cue(m.logEndEl, "▼")
		}
		b.WriteString(ln + " " + cueCol + "\n")
	}

	opts := m.eng.Configuration()
	parts := []string{
		"anim: " + opts.Animation,
		fmt.Sprintf("threshold: %.0f", opts.Threshold),
	}
	if opts.Debug {
		parts = append(parts, "debug")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	b.WriteString("\n" + faintStyle.Render(strings.Join(parts, "  ")) + "\n")
	b.WriteString("h/l cards  j/k g/G log  c collapse  a anim  d diff  y copy  D debug  q quit\n")

	if n := len(m.diags.lines); n > 0 {
		start := n - 3
		if start < 0 {
			start = 0
		}
		for _, ln := range m.diags.lines[start:] {
			b.WriteString(faintStyle.Render("! "+ln) + "\n")
		}
	}

	if m.showOverlay {
		b.WriteString(overlayStyle.Render("State diff\n" + m.overlay))
		b.WriteString("\n")
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
