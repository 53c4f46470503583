package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iw2rmb/editable"
	"github.com/iw2rmb/editable/textbox"
)

type options struct {
	text        string
	placeholder string
	maxLength   int
	width       int
	height      int
	disabled    bool
	noHistory   bool
	logFile     string
	debug       bool
}

type status struct {
	changes  int
	last     textbox.ChangeEvent
	external int
}

type model struct {
	box     textbox.Model
	opts    options
	status  *status
	resetTo string
}

func newModel(opts options, log *slog.Logger) model {
	st := &status{}
	cfg := textbox.Config{
		Text:        opts.text,
		Placeholder: opts.placeholder,
		MaxLength:   opts.maxLength,
		Disabled:    opts.disabled,
		AutoFocus:   true,
		Width:       opts.width,
		MaxHeight:   opts.height,
		Style:       textbox.DefaultStyle(),
		Clipboard:   textbox.SystemClipboard(),
		Logger:      log,
		OnEdit: func(ev textbox.ChangeEvent) {
			st.changes++
			st.last = ev
			log.Info("content changed", "cause", ev.Cause.String(), "edits", len(ev.Edits))
		},
		OnContentExternalUpdate: func(string) { st.external++ },
	}
	if opts.noHistory {
		cfg.Disable |= textbox.CapUndoHistory
	}
	return model{box: textbox.New(cfg), opts: opts, status: st, resetTo: opts.text}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width
		if m.opts.width > 0 && m.opts.width < w {
			w = m.opts.width
		}
		h := boxHeight(msg.Height)
		if m.opts.height > 0 && m.opts.height < h {
			h = m.opts.height
		}
		m.box = m.box.SetSize(w, h)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q", "ctrl+c":
			return m, tea.Quit
		case "ctrl+r":
			m.box = m.box.ClearUpdatedContent().SetUpdatedContent(m.resetTo)
			return m, nil
		case "ctrl+d":
			m.box = m.box.SetDisabled(!m.box.Disabled())
			return m, nil
		case "esc":
			if m.box.Focused() {
				m.box = m.box.Blur()
			} else {
				m.box = m.box.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.box, cmd = m.box.Update(msg)
	return m, cmd
}

func (m model) View() string {
	last := "none"
	if m.status.changes > 0 {
		last = m.status.last.Cause.String()
	}
	lines := []string{
		m.box.View(),
		"",
		fmt.Sprintf("changes: %d (last: %s)  resets: %d", m.status.changes, last, m.status.external),
		fmt.Sprintf("caret: %d  all selected: %v  undo: %v  redo: %v",
			m.box.Caret(), m.box.AllSelected(), m.box.CanUndo(), m.box.CanRedo()),
		"ctrl+r reset  ctrl+d toggle disabled  esc toggle focus  ctrl+q quit",
	}
	return strings.Join(lines, "\n")
}

func boxHeight(total int) int {
	h := total - 4
	if h < 1 {
		return 1
	}
	return h
}

func newLogger(opts options) *slog.Logger {
	if opts.logFile == "" {
		return slog.New(slog.DiscardHandler)
	}
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	w := &lumberjack.Logger{
		Filename:   opts.logFile,
		MaxSize:    5, // MB
		MaxBackups: 2,
		MaxAge:     7, // days
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(opts options) error {
	log := newLogger(opts)
	log.Info("starting", "version", editable.Version(), "max_length", opts.maxLength)

	p := tea.NewProgram(newModel(opts, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	var opts options
	root := &cobra.Command{
		Use:           "editable-demo",
		Short:         "Interactive demo of the editable text box",
		Version:       editable.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	f := root.Flags()
	f.StringVar(&opts.text, "text", "Hello from editable.\nType, paste, undo with ctrl+z.", "initial content")
	f.StringVar(&opts.placeholder, "placeholder", "Type something...", "text shown while empty")
	f.IntVar(&opts.maxLength, "max-length", 0, "maximum content length in runes (0 is unbounded)")
	f.IntVar(&opts.width, "width", 60, "text box width in cells (0 disables wrapping)")
	f.IntVar(&opts.height, "height", 10, "maximum text box height in rows (0 is unbounded)")
	f.BoolVar(&opts.disabled, "disabled", false, "start disabled")
	f.BoolVar(&opts.noHistory, "no-history", false, "disable undo and redo")
	f.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	f.BoolVar(&opts.debug, "debug", false, "log at debug level")

	if err := root.Execute(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
