// Package tui renders the portfolio in the terminal, driven by the same
// scroll, typewriter, contact and motion engines as the web page.
package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/27piyush27/folio/internal/clock"
	"github.com/27piyush27/folio/internal/contact"
	"github.com/27piyush27/folio/internal/content"
	"github.com/27piyush27/folio/internal/motion"
	"github.com/27piyush27/folio/internal/scene"
	"github.com/27piyush27/folio/internal/scroll"
	"github.com/27piyush27/folio/internal/typewriter"
	"github.com/27piyush27/folio/internal/vitals"
)

const (
	headerLines = 4
	footerLines = 1
	formLines   = 4
)

// Options configures a Model.
type Options struct {
	Clock      clock.Clock
	Typewriter typewriter.Timing
	Contact    contact.Timing
}

type frameMsg time.Time

type glideState struct {
	glide scroll.Glide
	start time.Time
}

type navItem struct {
	id     string
	name   string
	center motion.Point
}

// Model is the bubbletea model for the preview.
type Model struct {
	profile *content.Profile
	clk     clock.Clock
	styles  styles

	frames   *tickFrames
	coord    *scroll.Coordinator
	rotator  *typewriter.Rotator
	form     *contact.Form
	counters []*motion.Counter
	cursor   *motion.Cursor
	meter    *vitals.Meter
	view     scene.View

	vp     viewport.Model
	inputs []textinput.Model
	focus  int

	nav        []navItem
	blocks     []block
	totalLines int
	bio        string
	bioWidth   int
	dirty      bool

	width, height int
	ready         bool
	glide         *glideState
	pointerSeen   bool
	hover         string
	active        string
	typed         string
	stats         []int
	snapshot      contact.Snapshot
	formErr       string
	heapMB        float64
	heapAt        time.Time
	closed        bool
}

// New builds a preview of p. The engines start with Init.
func New(p *content.Profile, opts Options) (*Model, error) {
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real()
	}

	m := &Model{
		profile: p,
		clk:     clk,
		styles:  defaultStyles(),
		frames:  &tickFrames{},
		form:    contact.NewForm(clk, opts.Contact),
		cursor:  motion.NewCursor(clk, motion.SettleDelay),
		meter:   vitals.NewMeter(clk),
		// A terminal has no graphics surface; the backdrop falls back.
		view:  scene.Choose(nil, scene.Default(scene.NewRand(scene.DefaultSeed))),
		vp:    viewport.New(80, 20),
		focus: -1,
	}

	rot, err := typewriter.NewRotator(p.Phrases, opts.Typewriter, clk)
	switch {
	case errors.Is(err, typewriter.ErrNoPhrases):
	case err != nil:
		return nil, err
	default:
		m.rotator = rot
	}

	for _, s := range p.Stats {
		m.counters = append(m.counters, motion.NewCounter(s.Value, motion.DefaultCountDuration, clk, m.frames))
	}
	m.stats = make([]int, len(p.Stats))

	for _, placeholder := range []string{"Your Name", "Your Email", "Your Message"} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Prompt = ""
		in.CharLimit = 500
		m.inputs = append(m.inputs, in)
	}

	x := float64(lipgloss.Width(p.Initials) + 1)
	for _, n := range p.Navigation {
		w := float64(len([]rune(n.Name)) + 2)
		m.nav = append(m.nav, navItem{
			id:     n.Target,
			name:   n.Name,
			center: motion.Point{X: (x + w/2) * CellPx, Y: 0.5 * LinePx},
		})
		x += w
	}

	m.coord = scroll.New(p.SectionIDs(), scroll.LayoutFunc(m.bounds), float64(m.vp.Height)*LinePx, m.frames)
	m.coord.OnReveal = func(string) { m.dirty = true }
	m.active = m.coord.Active()
	return m, nil
}

func (m *Model) bounds(id string) (scroll.Rect, bool) {
	for _, b := range m.blocks {
		if b.id == id {
			return scroll.Rect{Top: float64(b.top) * LinePx, Height: float64(b.height) * LinePx}, true
		}
	}
	return scroll.Rect{}, false
}

func tick() tea.Cmd {
	return tea.Tick(clock.DefaultFrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init starts the typewriter and counters and schedules the first frame.
func (m *Model) Init() tea.Cmd {
	if m.rotator != nil {
		m.rotator.Start()
	}
	for _, c := range m.counters {
		c.Start()
	}
	m.heapMB = vitals.HeapMB()
	m.heapAt = m.clk.Now()
	m.coord.Refresh()
	return tick()
}

// Close stops every engine. Pending timers are cancelled.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.rotator != nil {
		m.rotator.Stop()
	}
	for _, c := range m.counters {
		c.Stop()
	}
	m.form.Close()
	m.cursor.Stop()
	m.frames.Stop()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case frameMsg:
		if m.closed {
			return m, nil
		}
		m.onFrame()
		return m, tick()

	case tea.MouseMsg:
		switch {
		case msg.Action == tea.MouseActionMotion:
			m.pointerSeen = true
			m.cursor.Move(motion.Point{X: (float64(msg.X) + 0.5) * CellPx, Y: (float64(msg.Y) + 0.5) * LinePx})
		case msg.Button == tea.MouseButtonWheelUp:
			m.scrollBy(-3)
		case msg.Button == tea.MouseButtonWheelDown:
			m.scrollBy(3)
		}
		return m, nil

	case tea.KeyMsg:
		if m.focus >= 0 {
			return m, m.updateForm(msg)
		}
		return m, m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		m.Close()
		return tea.Quit
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "pgup", "b":
		m.scrollBy(-m.vp.Height)
	case "pgdown", "f", " ":
		m.scrollBy(m.vp.Height)
	case "home", "g":
		m.glideTo(0)
	case "end", "G":
		m.glideTo(m.maxOffset())
	case "c":
		m.focus = 0
		m.resize()
		return m.inputs[0].Focus()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.profile.Navigation) {
				m.JumpTo(m.profile.Navigation[i].Target)
			}
		}
	}
	return nil
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.Close()
		return tea.Quit
	case "esc":
		m.inputs[m.focus].Blur()
		m.focus = -1
		m.resize()
		return nil
	case "tab", "down":
		return m.focusField((m.focus + 1) % len(m.inputs))
	case "shift+tab", "up":
		return m.focusField((m.focus + len(m.inputs) - 1) % len(m.inputs))
	case "enter":
		if m.focus < len(m.inputs)-1 {
			return m.focusField(m.focus + 1)
		}
		return m.submit()
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *Model) focusField(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m *Model) submit() tea.Cmd {
	m.form.Fill(contact.Submission{
		Name:    m.inputs[0].Value(),
		Email:   m.inputs[1].Value(),
		Message: m.inputs[2].Value(),
	})
	err := m.form.Submit()
	m.snapshot = m.form.Snapshot()

	var fe *contact.FieldError
	switch {
	case errors.As(err, &fe):
		m.formErr = fe.Reason
		for i, f := range []contact.Field{contact.FieldName, contact.FieldEmail, contact.FieldMessage} {
			if f == fe.Field {
				return m.focusField(i)
			}
		}
	case err != nil:
		m.formErr = err.Error()
	default:
		m.formErr = ""
		for i := range m.inputs {
			m.inputs[i].Reset()
		}
		return m.focusField(0)
	}
	return nil
}

// JumpTo glides the body to the top of the section with the given id.
func (m *Model) JumpTo(id string) {
	for _, b := range m.blocks {
		if b.id == id {
			m.glideTo(min(b.top, m.maxOffset()))
			return
		}
	}
}

func (m *Model) glideTo(target int) {
	m.glide = &glideState{
		glide: scroll.NewGlide(float64(m.vp.YOffset), float64(target)),
		start: m.clk.Now(),
	}
}

func (m *Model) scrollBy(n int) {
	m.glide = nil
	m.vp.SetYOffset(m.vp.YOffset + n)
	m.coord.OnScroll(float64(m.vp.YOffset) * LinePx)
}

func (m *Model) maxOffset() int {
	return max(0, m.totalLines-m.vp.Height)
}

// onFrame runs one display frame: engine callbacks, the glide, and a poll
// of the clock-driven engines' state.
func (m *Model) onFrame() {
	m.frames.flush()

	now := m.clk.Now()
	if m.glide != nil {
		elapsed := now.Sub(m.glide.start)
		m.vp.SetYOffset(int(math.Round(m.glide.glide.Offset(elapsed))))
		m.coord.OnScroll(float64(m.vp.YOffset) * LinePx)
		if m.glide.glide.Done(elapsed) {
			m.glide = nil
		}
	}

	m.meter.Frame()
	if now.Sub(m.heapAt) >= vitals.MemoryInterval {
		m.heapMB = vitals.HeapMB()
		m.heapAt = now
	}

	if m.rotator != nil {
		m.typed = m.rotator.Text()
	}
	for i, c := range m.counters {
		m.stats[i] = c.Value()
	}
	m.snapshot = m.form.Snapshot()
	m.active = m.coord.Active()
	m.hover = m.hovered()

	if m.dirty {
		m.refreshBody()
	}
}

// hovered returns the nav item the settled pointer is pulling, if any.
func (m *Model) hovered() string {
	if !m.pointerSeen || m.navCollapsed() {
		return ""
	}
	p := m.cursor.Position()
	best, bestDist := "", math.Inf(1)
	for _, item := range m.nav {
		if motion.Magnet(p, item.center) == motion.Identity {
			continue
		}
		if d := math.Hypot(p.X-item.center.X, p.Y-item.center.Y); d < bestDist {
			best, bestDist = item.id, d
		}
	}
	return best
}

// navCollapsed reports whether the nav bar has slid fully out of view.
func (m *Model) navCollapsed() bool {
	return motion.NavOffset(float64(m.vp.YOffset)*LinePx) <= -100
}

func (m *Model) resize() {
	if !m.ready {
		return
	}
	h := m.height - headerLines - footerLines
	if m.focus >= 0 {
		h -= formLines
	}
	m.vp.Width = m.width
	m.vp.Height = max(1, h)

	if w := m.contentWidth(); w != m.bioWidth {
		m.bioWidth = w
		m.bio = renderBio(m.profile.Bio, w)
	}
	m.refreshBody()
	m.coord.Resize(float64(m.vp.Height) * LinePx)
}

func (m *Model) contentWidth() int {
	return max(20, m.width-4)
}

func (m *Model) refreshBody() {
	m.dirty = false
	body, blocks := renderBody(m.profile, m.bio, m.contentWidth(), m.coord.Revealed, m.styles)
	m.blocks = blocks
	m.totalLines = strings.Count(body, "\n") + 1
	m.vp.SetContent(body)
}

func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	parts := []string{m.headerView(), m.vp.View()}
	if m.focus >= 0 {
		parts = append(parts, m.formView())
	}
	parts = append(parts, m.footerView())
	return strings.Join(parts, "\n")
}

func (m *Model) headerView() string {
	line := lipgloss.NewStyle().MaxWidth(m.width)
	st := m.styles

	var nav strings.Builder
	nav.WriteString(st.Brand.Render(m.profile.Initials) + " ")
	if m.navCollapsed() {
		nav.WriteString(st.NavActive.Render(m.activeName()))
	} else {
		for _, item := range m.nav {
			switch item.id {
			case m.active:
				nav.WriteString(st.NavActive.Render(item.name))
			case m.hover:
				nav.WriteString(st.NavHover.Render(item.name))
			default:
				nav.WriteString(st.NavItem.Render(item.name))
			}
		}
	}

	hero := st.Name.Render(m.profile.Name) + "  " + st.Typed.Render(m.typed+"|")

	var stats []string
	for i, s := range m.profile.Stats {
		stats = append(stats, st.Stat.Render(fmt.Sprintf("%d%s", m.stats[i], s.Suffix))+" "+s.Label)
	}

	banner := "3D scene live"
	if !m.view.Live() {
		banner = "3D scene unavailable, showing gradient backdrop"
	}

	return strings.Join([]string{
		line.Render(nav.String()),
		line.Render(hero),
		line.Render(strings.Join(stats, "   ")),
		line.Render(st.Banner.Render(banner)),
	}, "\n")
}

func (m *Model) activeName() string {
	for _, item := range m.nav {
		if item.id == m.active {
			return item.name
		}
	}
	return m.active
}

func (m *Model) formView() string {
	st := m.styles
	fields := []contact.Field{contact.FieldName, contact.FieldEmail, contact.FieldMessage}
	labels := []string{"Name", "Email", "Message"}

	var rows []string
	for i, in := range m.inputs {
		label := st.Label.Render(labels[i])
		if m.snapshot.Invalid == fields[i] {
			label = st.Invalid.Render(labels[i])
		}
		rows = append(rows, label+in.View())
	}

	var status string
	switch m.snapshot.State {
	case contact.Sending:
		status = "Sending..."
	case contact.Sent:
		status = "Message sent!"
	default:
		status = m.formErr
		if status == "" {
			status = "enter: next/send  tab: switch field  esc: close"
		}
	}
	rows = append(rows, st.Status.Render(status))
	return strings.Join(rows, "\n")
}

func (m *Model) footerView() string {
	text := fmt.Sprintf("%d fps · %.1f MB · %s · ↑/↓ scroll  1-%d jump  c contact  q quit",
		m.meter.FPS(), m.heapMB, m.activeName(), min(9, len(m.nav)))
	return m.styles.Footer.MaxWidth(m.width).Render(text)
}

// Run starts the preview program and blocks until it exits.
func Run(p *content.Profile, opts Options) error {
	m, err := New(p, opts)
	if err != nil {
		return err
	}
	defer m.Close()
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
