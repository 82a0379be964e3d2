package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/pagefx/internal/config"
	"github.com/san-kum/pagefx/internal/contact"
	"github.com/san-kum/pagefx/internal/export"
	"github.com/san-kum/pagefx/internal/i18n"
	"github.com/san-kum/pagefx/internal/intro"
	"github.com/san-kum/pagefx/internal/page"
	"github.com/san-kum/pagefx/internal/parallax"
	"github.com/san-kum/pagefx/internal/sched"
)

// canvasOnly is a document with nothing but the particle canvas.
type canvasOnly struct {
	surface page.CanvasSurface
}

func (d canvasOnly) Overlay() (intro.Overlay, bool)           { return nil, false }
func (d canvasOnly) ParallaxLayers() []parallax.Layer         { return nil }
func (d canvasOnly) ParallaxReference() (parallax.Rect, bool) { return parallax.Rect{}, false }
func (d canvasOnly) Canvas() (page.CanvasSurface, bool)       { return d.surface, true }
func (d canvasOnly) ContactForm() (contact.Form, bool)        { return nil, false }
func (d canvasOnly) Feedback() (contact.Feedback, bool)       { return nil, false }
func (d canvasOnly) SubmitButton() (contact.Button, bool)     { return nil, false }
func (d canvasOnly) YearDisplay() (page.TextSink, bool)       { return nil, false }
func (d canvasOnly) NavMenu() (page.Menu, bool)               { return nil, false }

// mountHeadless mounts the particle field on an SVG surface driven by a
// virtual frame scheduler.
func mountHeadless(cmd *cobra.Command) (*page.Page, *export.SVG, *sched.Virtual, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, nil, nil, fmt.Errorf("invalid viewport %gx%g", width, height)
	}

	svg := export.NewSVG(width, height)
	v := sched.NewVirtual()
	p := page.Mount(canvasOnly{surface: svg}, page.Env{Width: width, Height: height}, cfg, page.Runtime{
		Clock:  v,
		Frames: v,
		Logger: newLogger(),
	})

	if pointer != "" {
		x, y, err := parsePoint(pointer)
		if err != nil {
			return nil, nil, nil, err
		}
		p.Handle(page.PointerMove{X: x, Y: y})
	}
	return p, svg, v, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	p, svg, v, err := mountHeadless(cmd)
	if err != nil {
		return err
	}
	for i := 0; i < numFrames; i++ {
		v.Frame()
	}
	p.Handle(page.Unload{})

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := svg.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	fmt.Printf("frames: %d\n", p.Animator.FrameCount())
	fmt.Printf("particles: %d\n", svg.Circles())
	fmt.Printf("links: %d\n", svg.Lines())
	fmt.Printf("saved to %s\n", outFile)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	p, _, v, err := mountHeadless(cmd)
	if err != nil {
		return err
	}
	if numFrames < 2 {
		return fmt.Errorf("need at least 2 frames, got %d", numFrames)
	}

	speeds := make([]float64, 0, numFrames)
	links := make([]float64, 0, numFrames)
	for i := 0; i < numFrames; i++ {
		v.Frame()
		speeds = append(speeds, p.Field.MeanSpeed())
		links = append(links, float64(len(p.Field.LinkList())))
	}
	p.Handle(page.Unload{})

	fmt.Printf("particles: %d  radius: %.1f\n\n", p.Field.Len(), p.Field.Radius())
	fmt.Println(asciigraph.Plot(speeds,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean speed (px/frame)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(links,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("links"),
	))
	return nil
}

// printOverlay writes every overlay change with its virtual time.
type printOverlay struct {
	w     *tabwriter.Writer
	clock *sched.Virtual
}

func (o printOverlay) SetText(text string) { o.line("text", fmt.Sprintf("%q", text)) }
func (o printOverlay) Hide()               { o.line("hide", "") }
func (o printOverlay) Remove()             { o.line("remove", "") }

func (o printOverlay) line(event, detail string) {
	fmt.Fprintf(o.w, "%d\t%s\t%s\n", o.clock.Now().Milliseconds(), event, detail)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	v := sched.NewVirtual()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MS\tEVENT\tDETAIL")

	out := printOverlay{w: w, clock: v}
	seq := intro.New(out, v, page.IntroOptions(cfg))
	seq.OnPhase = func(from, to intro.Phase) {
		out.line("phase", from.String()+" -> "+to.String())
	}
	seq.Start(reducedMotion)

	if cancelAfter > 0 {
		v.AfterFunc(time.Duration(cancelAfter)*time.Millisecond, seq.Cancel)
	}
	v.AdvanceUntilIdle(1000)
	return w.Flush()
}

type mapForm map[string]string

func (f mapForm) Value(field string) string { return f[field] }
func (f mapForm) Focus(field string)        { fmt.Printf("focus: %s\n", field) }

type printFeedback struct{}

func (printFeedback) Show(text string, ok bool) {
	status := "blocked"
	if ok {
		status = "ok"
	}
	fmt.Printf("[%s] %s\n", status, text)
}

func (printFeedback) Hide() {}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	form := mapForm{
		contact.FieldName:    formName,
		contact.FieldEmail:   formEmail,
		contact.FieldMessage: formMessage,
	}
	guard := contact.New(form, printFeedback{}, nil, sched.NewVirtual(), i18n.Printer(cfg.Locale), page.ContactOptions(cfg))
	if !guard.Submit() {
		return errBlocked
	}
	return nil
}

func configInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := "pagefx.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func configShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
