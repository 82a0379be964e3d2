package viz

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/message"

	"github.com/san-kum/pagefx/internal/config"
	"github.com/san-kum/pagefx/internal/i18n"
	"github.com/san-kum/pagefx/internal/page"
	"github.com/san-kum/pagefx/internal/sched"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	chromeRows      = 2
	titleRows       = 1
	historyCapacity = 240
)

type TickMsg time.Time

// PreviewOptions configures a terminal preview.
type PreviewOptions struct {
	Config        *config.Config
	FPS           int
	ReducedMotion bool
	Cols, Rows    int
	Year          int
	Logger        *slog.Logger
}

// Preview renders the page in a terminal. Page time runs on a virtual clock
// advanced by one frame interval per tick, so the intro plays at real speed
// while every frame stays deterministic for a given seed.
type Preview struct {
	cfg     *config.Config
	fps     int
	reduced bool
	logger  *slog.Logger
	printer *message.Printer

	clock *sched.Virtual
	doc   *termDocument
	page  *page.Page

	cols, rows int
	ticks      int
	speeds     []float64
	quitting   bool
}

func NewPreview(opts PreviewOptions) *Preview {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 {
		cols = defaultCols
	}
	if rows <= 0 {
		rows = defaultRows
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
	}

	p := &Preview{
		cfg:     cfg,
		fps:     fps,
		reduced: opts.ReducedMotion,
		logger:  logger,
		printer: i18n.Printer(cfg.Locale),
		clock:   sched.NewVirtual(),
		cols:    cols,
		rows:    rows,
	}
	p.doc = newTermDocument(cols, p.canvasRows())

	env := page.Env{
		ReducedMotion: opts.ReducedMotion,
		Width:         p.doc.width,
		Height:        p.doc.height,
		Year:          year,
	}
	rt := page.Runtime{
		Clock:  p.clock,
		Frames: p.clock,
		Rand:   rand.New(rand.NewSource(cfg.Seed)),
		Logger: logger,
	}
	p.page = page.Mount(p.doc, env, cfg, rt)
	return p
}

func (p *Preview) Page() *page.Page      { return p.page }
func (p *Preview) Clock() *sched.Virtual { return p.clock }
func (p *Preview) Ticks() int            { return p.ticks }

func (p *Preview) canvasRows() int {
	if p.rows > chromeRows+1 {
		return p.rows - chromeRows
	}
	return 1
}

func (p *Preview) interval() time.Duration {
	return time.Second / time.Duration(p.fps)
}

func (p *Preview) tick() tea.Cmd {
	return tea.Tick(p.interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (p *Preview) Init() tea.Cmd {
	return p.tick()
}

func (p *Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			p.page.Handle(page.Unload{})
			p.quitting = true
			return p, tea.Quit
		case "esc":
			p.page.Handle(page.KeyPress{Key: "Escape"})
		case "enter", " ":
			p.page.Handle(page.OverlayClick{})
		case "m":
			p.page.Handle(page.NavToggle{})
		default:
			p.page.Handle(page.KeyPress{Key: msg.String()})
		}

	case tea.MouseMsg:
		x, y := canvasPixel(msg.X, msg.Y)
		switch msg.Action {
		case tea.MouseActionMotion:
			p.page.Handle(page.PointerMove{X: x, Y: y})
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				if p.doc.overlay.Visible() {
					p.page.Handle(page.OverlayClick{})
				} else {
					p.page.Handle(page.PointerMove{X: x, Y: y})
				}
			}
		}

	case tea.WindowSizeMsg:
		p.resize(msg.Width, msg.Height)

	case TickMsg:
		if p.quitting {
			return p, nil
		}
		p.advance()
		return p, p.tick()
	}
	return p, nil
}

// advance moves page time forward by one frame interval and runs the
// animation frame that became due.
func (p *Preview) advance() {
	p.clock.Advance(p.interval())
	p.clock.Frame()
	p.ticks++

	if f := p.page.Field; f != nil {
		p.speeds = append(p.speeds, f.MeanSpeed())
		if len(p.speeds) > historyCapacity {
			p.speeds = p.speeds[len(p.speeds)-historyCapacity:]
		}
	}
}

func (p *Preview) resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	p.cols, p.rows = cols, rows
	w, h := ViewportPx(cols, p.canvasRows())
	p.doc.width, p.doc.height = w, h
	p.page.Handle(page.Resize{Width: w, Height: h})
	p.logger.Debug("preview resized", "cols", cols, "rows", rows)
}

// canvasPixel maps a screen cell to the page pixel under it. The title line
// sits above the canvas, so rows at or above it map to the first canvas row.
func canvasPixel(col, row int) (x, y float64) {
	row -= titleRows
	if row < 0 {
		row = 0
	}
	return PixelAt(col, row)
}

func (p *Preview) View() string {
	if p.quitting {
		return ""
	}
	if p.doc.overlay.Visible() {
		return p.overlayView()
	}

	var b strings.Builder
	b.WriteString(p.titleLine())
	b.WriteByte('\n')

	switch {
	case p.doc.menu.Open():
		b.WriteString(lipgloss.Place(p.cols, p.canvasRows(), lipgloss.Center, lipgloss.Center, p.menuView()))
	case p.page.Animator != nil:
		b.WriteString(p.doc.surface.Canvas.Render())
	default:
		b.WriteString(strings.Repeat("\n", p.canvasRows()-1))
	}
	b.WriteByte('\n')
	b.WriteString(p.statusLine())
	return b.String()
}

func (p *Preview) overlayView() string {
	text := p.doc.overlay.text
	if text == "" {
		text = " "
	}
	body := OverlayText.Render(text+"▌") + "\n\n" + KeyHint.Render(p.printer.Sprintf(i18n.KeyIntroSkipHint))
	return lipgloss.Place(p.cols, p.rows, lipgloss.Center, lipgloss.Center, body, lipgloss.WithWhitespaceChars(" "))
}

func (p *Preview) titleLine() string {
	title := GradientText(p.cfg.Intro.Phrase,
		colorful.Color{R: 245.0 / 255, G: 158.0 / 255, B: 11.0 / 255},
		colorful.Color{R: 201.0 / 255, G: 198.0 / 255, B: 191.0 / 255})
	pad := (p.cols-len([]rune(p.cfg.Intro.Phrase)))/2 + p.doc.title.Columns()
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + title
}

func (p *Preview) menuView() string {
	lines := []string{
		KeyHint.Render("m") + "  " + p.printer.Sprintf(i18n.KeyNavClose),
		KeyHint.Render("q") + "  quit",
		"",
		MetricLabel.Render("seed        ") + MetricValue.Render(fmt.Sprint(p.cfg.Seed)),
		MetricLabel.Render("locale      ") + MetricValue.Render(i18n.Resolve(p.cfg.Locale).String()),
	}
	return MenuPanel.Render(strings.Join(lines, "\n"))
}

func (p *Preview) statusLine() string {
	var parts []string
	if a := p.page.Animator; a != nil && a.Running() {
		parts = append(parts, StatusRunning.Render("● live"))
	} else if p.reduced {
		parts = append(parts, StatusStopped.Render("○ reduced motion"))
	} else {
		parts = append(parts, StatusStopped.Render("○ stopped"))
	}
	if f := p.page.Field; f != nil {
		parts = append(parts,
			MetricLabel.Render("particles ")+MetricValue.Render(fmt.Sprint(f.Len())),
			MetricLabel.Render("links ")+MetricValue.Render(fmt.Sprint(len(f.LinkList()))),
			MetricLabel.Render("speed ")+MetricValue.Render(fmt.Sprintf("%.2f", f.MeanSpeed())),
			SparklineChart(p.speeds, 20),
		)
	}
	parts = append(parts,
		Subtle.Render("© "+p.doc.year.text),
		KeyHint.Render("m "+p.printer.Sprintf(i18n.KeyNavOpen)+" · q quit"),
	)
	return strings.Join(parts, "  ")
}

// RunPreview runs the preview until the user quits.
func RunPreview(opts PreviewOptions) error {
	prog := tea.NewProgram(NewPreview(opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := prog.Run()
	return err
}
