package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/mrsinham/alzforge/cmd/alzforge/wizard/components"
	"github.com/mrsinham/alzforge/cmd/alzforge/wizard/screens"
	"github.com/mrsinham/alzforge/internal/intake"
	"github.com/mrsinham/alzforge/internal/intake/session"
	"github.com/mrsinham/alzforge/internal/logging"
	"github.com/mrsinham/alzforge/internal/util"
)

var (
	// ErrCancelled is returned when the user leaves before finishing.
	ErrCancelled = errors.New("intake cancelled")

	// ErrNotInteractive is returned when stdin or stderr is not a terminal.
	ErrNotInteractive = errors.New("an interactive terminal is required (use --accessible for plain prompts)")
)

// isInteractive reports whether the full-screen TUI can run. The TUI draws
// on stderr so stdout stays free for the record.
var isInteractive = func() bool {
	in, out := os.Stdin.Fd(), os.Stderr.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}

// sectionScreen is implemented by the identification and data sections.
type sectionScreen interface {
	tea.Model
	Done() bool
	Cancelled() bool
	Action() screens.Action
	Fields() (intake.Fields, error)
	Form() *huh.Form
	Request() intake.RenderRequest
	SetSummary(rows [][]string)
	Summary() [][]string
}

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	ctx    context.Context
	store  session.Store
	sess   session.Session
	logger *slog.Logger
	rng    *rand.Rand

	// Current phase
	phase Phase

	// Screen instances
	section       sectionScreen
	summaryScreen *screens.SummaryScreen
	errorScreen   *screens.ErrorScreen

	// patientName survives revisits of the identification section. It is
	// never written to the session.
	patientName string

	record intake.FeatureRecord

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
	err       error
}

// NewWizard opens a session in the store and shows the first section.
func NewWizard(ctx context.Context, opts Options) (*Wizard, error) {
	store := opts.Store
	if store == nil {
		store = session.NewMemStore()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	rng := opts.RNG
	if rng == nil {
		rng = util.NewRNG(0)
	}

	sess, err := store.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	w := &Wizard{
		ctx:    ctx,
		store:  store,
		sess:   sess,
		logger: logger.With("session", sess.ID),
		rng:    rng,
	}
	w.logger.Info("intake session started")
	w.showSection(intake.RenderCurrentSection(sess.State, rng))

	return w, nil
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.initCurrent()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size for all phases
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseSection:
		return w.updateSection(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseSection:
		return w.section.View()
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// initCurrent sizes and initializes the screen of the current phase.
func (w *Wizard) initCurrent() tea.Cmd {
	var m tea.Model
	switch w.phase {
	case PhaseSection:
		m = w.section
	case PhaseSummary:
		m = w.summaryScreen
	default:
		return nil
	}

	if w.width > 0 {
		m.Update(tea.WindowSizeMsg{Width: w.width, Height: w.height})
	}
	return m.Init()
}

// showSection builds the screen for req. Screens are never reused so the
// identification section draws a new identifier each time it is shown.
// Once submitted, every section also shows the record as it stands.
func (w *Wizard) showSection(req intake.RenderRequest) {
	w.phase = PhaseSection
	if req.Section == intake.SectionIdentification {
		w.section = screens.NewIdentificationScreen(req, w.patientName, w.rng)
	} else {
		w.section = screens.NewSectionScreen(req, w.sess.State.Inputs)
	}

	if req.ShowSummary {
		if rec, err := w.sess.State.Finalize(); err == nil {
			w.record = rec
			w.section.SetSummary(RecordRows(rec))
		}
	}
}

// updateSection handles updates while a section form is shown.
func (w *Wizard) updateSection(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := w.section.Update(msg)

	if w.section.Cancelled() {
		w.cancel()
		return w, tea.Quit
	}

	if w.section.Done() {
		if err := w.completeSection(); err != nil {
			return w.fail(err)
		}
		return w, w.initCurrent()
	}

	return w, cmd
}

// completeSection records the finished screen and applies its navigation.
func (w *Wizard) completeSection() error {
	if id, ok := w.section.(*screens.IdentificationScreen); ok {
		w.patientName = id.Name()
	}

	fields, err := w.section.Fields()
	if err != nil {
		return fmt.Errorf("reading %s: %w", w.section.Request().Title, err)
	}

	return w.apply(w.section.Action(), fields)
}

// apply records fields (when non-nil), performs action, persists the new
// state and shows whatever comes next.
func (w *Wizard) apply(action screens.Action, fields intake.Fields) error {
	prev := w.sess.State

	next := prev
	if fields != nil {
		next = next.RecordSectionFields(fields)
	}
	switch action {
	case screens.ActionBack:
		next = next.Retreat()
	case screens.ActionNext:
		next = next.Advance()
	case screens.ActionSubmit:
		next = next.Submit()
	}

	if err := w.persist(next); err != nil {
		return err
	}

	w.logger.Debug("section transition",
		"action", action.String(),
		"from", int(prev.Step),
		"to", int(next.Step),
		"recorded", len(fields),
	)

	req := intake.RenderCurrentSection(w.sess.State, w.rng)
	if action == screens.ActionSubmit && req.ShowSummary {
		return w.showSummary()
	}
	w.showSection(req)
	return nil
}

func (w *Wizard) persist(s intake.State) error {
	next := w.sess
	next.State = s
	saved, err := w.store.Put(w.ctx, next)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	w.sess = saved
	return nil
}

// showSummary finalizes the record and moves to the summary screen.
func (w *Wizard) showSummary() error {
	rec, err := w.sess.State.Finalize()
	if err != nil {
		return err
	}

	w.record = rec
	w.phase = PhaseSummary
	w.summaryScreen = screens.NewSummaryScreen(RecordRows(rec))
	w.logger.Info("intake submitted", "columns", len(rec.Columns()))
	return nil
}

// updateSummary handles updates in the summary phase.
func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := w.summaryScreen.Update(msg)

	if w.summaryScreen.Cancelled() {
		w.cancel()
		return w, tea.Quit
	}

	if w.summaryScreen.Done() {
		if w.completeSummary() {
			return w, tea.Quit
		}
		return w, w.initCurrent()
	}

	return w, cmd
}

// completeSummary applies the summary action and reports whether the wizard
// is finished.
func (w *Wizard) completeSummary() bool {
	switch w.summaryScreen.Action() {
	case screens.SummaryActionBack:
		w.logger.Debug("back to edit", "step", int(w.sess.State.Step))
		w.showSection(intake.RenderCurrentSection(w.sess.State, w.rng))
		return false
	default:
		w.finished = true
		w.logger.Info("intake finished")
		return true
	}
}

func (w *Wizard) cancel() {
	w.cancelled = true
	w.logger.Info("intake cancelled", "step", int(w.sess.State.Step))
}

// fail switches to the error screen.
func (w *Wizard) fail(err error) (tea.Model, tea.Cmd) {
	w.err = err
	w.phase = PhaseError
	w.errorScreen = screens.NewErrorScreen(err)
	w.logger.Error("intake failed", "error", err)
	return w, nil
}

// updateError handles updates in the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := w.errorScreen.Update(msg)

	if w.errorScreen.Done() {
		return w, tea.Quit
	}

	return w, cmd
}

// Phase returns the current phase.
func (w *Wizard) Phase() Phase { return w.phase }

// Session returns the current session.
func (w *Wizard) Session() session.Session { return w.sess }

// result maps the final wizard state to Run's return values.
func (w *Wizard) result() (intake.FeatureRecord, error) {
	if w.err != nil {
		return intake.FeatureRecord{}, w.err
	}
	if w.cancelled || !w.finished {
		return intake.FeatureRecord{}, ErrCancelled
	}
	return w.record, nil
}

// Run starts the interactive wizard and returns the finalized record once
// the user submits and finishes.
func Run(ctx context.Context, opts Options) (intake.FeatureRecord, error) {
	if !opts.Accessible && !isInteractive() {
		return intake.FeatureRecord{}, ErrNotInteractive
	}

	w, err := NewWizard(ctx, opts)
	if err != nil {
		return intake.FeatureRecord{}, err
	}

	if opts.Accessible {
		err = w.runAccessible(ctx, opts)
	} else {
		err = w.runProgram(ctx, opts)
	}
	if err != nil {
		return intake.FeatureRecord{}, err
	}

	return w.result()
}

func (w *Wizard) runProgram(ctx context.Context, opts Options) error {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	progOpts = append(progOpts, tea.WithOutput(out))

	p := tea.NewProgram(w, progOpts...)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			w.cancel()
			return nil
		}
		return fmt.Errorf("running wizard: %w", err)
	}
	return nil
}

// runAccessible drives the same screens as plain prompts, one form at a time.
func (w *Wizard) runAccessible(ctx context.Context, opts Options) error {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	for !w.finished && w.err == nil {
		var form *huh.Form
		switch w.phase {
		case PhaseSection:
			req := w.section.Request()
			fmt.Fprintf(out, "\n%s\n%s\n\n", components.AppTitle, components.StepLine(req))
			if rows := w.section.Summary(); rows != nil {
				fmt.Fprintf(out, "%s\n\n", screens.RenderTable(rows))
			}
			form = w.section.Form()
		case PhaseSummary:
			fmt.Fprintf(out, "\n%s\n", screens.RenderTable(RecordRows(w.record)))
			form = w.summaryScreen.Form()
		default:
			return w.err
		}

		form = form.WithAccessible(true).WithOutput(out)
		if opts.Input != nil {
			form = form.WithInput(opts.Input)
		}
		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
				w.cancel()
				return nil
			}
			return fmt.Errorf("running form: %w", err)
		}

		if err := w.completeAccessible(out); err != nil {
			w.err = err
		}
	}
	return nil
}

func (w *Wizard) completeAccessible(out io.Writer) error {
	if w.phase == PhaseSummary {
		w.completeSummary()
		return nil
	}

	if id, ok := w.section.(*screens.IdentificationScreen); ok {
		if err := intake.CheckPatientName(id.Name()); err != nil {
			fmt.Fprintf(out, "Warning: %v\n", err)
		}
	}
	return w.completeSection()
}
