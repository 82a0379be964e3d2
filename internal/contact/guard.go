// Package contact validates the contact form before handing it to the
// visitor's mail client.
package contact

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/message"

	"github.com/san-kum/pagefx/internal/i18n"
	"github.com/san-kum/pagefx/internal/sched"
)

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Backgrounds applied to the feedback element.
const (
	SuccessBackground = "linear-gradient(90deg,#1f7a27,#1fbf4a)"
	FailureBackground = "linear-gradient(90deg,#6b1f1f,#b32b2b)"
	FeedbackColor     = "#fff"
)

var validate = validator.New()

// Form gives access to the named input fields.
type Form interface {
	Value(field string) string
	Focus(field string)
}

// Feedback is the message area under the form.
type Feedback interface {
	Show(text string, ok bool)
	Hide()
}

// Button is the submit control.
type Button interface {
	SetDisabled(disabled bool)
}

// Submission is the trimmed content of the three required fields.
type Submission struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Message string `validate:"required"`
}

// Read collects and trims the required fields.
func Read(form Form) Submission {
	return Submission{
		Name:    strings.TrimSpace(form.Value(FieldName)),
		Email:   strings.TrimSpace(form.Value(FieldEmail)),
		Message: strings.TrimSpace(form.Value(FieldMessage)),
	}
}

func (s Submission) Validate() error {
	return validate.Struct(s)
}

type Options struct {
	SuccessVisible time.Duration
	Debounce       time.Duration
}

func DefaultOptions() Options {
	return Options{
		SuccessVisible: 5 * time.Second,
		Debounce:       2 * time.Second,
	}
}

type Guard struct {
	form     Form
	feedback Feedback
	button   Button
	clock    sched.Clock
	printer  *message.Printer
	opts     Options

	hideTimer sched.Timer
}

// New returns nil when the form is absent. A missing feedback area or submit
// button only disables that part of the behavior.
func New(form Form, feedback Feedback, button Button, clock sched.Clock, printer *message.Printer, opts Options) *Guard {
	if form == nil {
		return nil
	}
	if printer == nil {
		printer = message.NewPrinter(i18n.Default())
	}
	return &Guard{
		form:     form,
		feedback: feedback,
		button:   button,
		clock:    clock,
		printer:  printer,
		opts:     opts,
	}
}

// Submit runs on form submission and reports whether the native submit may
// proceed.
func (g *Guard) Submit() bool {
	if err := Read(g.form).Validate(); err != nil {
		g.show(g.printer.Sprintf(i18n.KeyContactMissing), false)
		g.focusAfterFailure()
		return false
	}

	g.show(g.printer.Sprintf(i18n.KeyContactPreparing), true)

	if g.button != nil {
		g.button.SetDisabled(true)
		g.clock.AfterFunc(g.opts.Debounce, func() { g.button.SetDisabled(false) })
	}
	return true
}

// focusAfterFailure moves focus to the name field when any field holds raw
// input, whitespace included. It does not look for the field that is
// actually empty.
func (g *Guard) focusAfterFailure() {
	if g.form.Value(FieldName) != "" || g.form.Value(FieldEmail) != "" || g.form.Value(FieldMessage) != "" {
		g.form.Focus(FieldName)
	}
}

func (g *Guard) show(text string, ok bool) {
	if g.feedback == nil {
		return
	}
	if g.hideTimer != nil {
		g.hideTimer.Stop()
		g.hideTimer = nil
	}
	g.feedback.Show(text, ok)
	if ok {
		g.hideTimer = g.clock.AfterFunc(g.opts.SuccessVisible, func() {
			g.hideTimer = nil
			g.feedback.Hide()
		})
	}
}
