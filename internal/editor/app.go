package editor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/ansi"

	"github.com/JackWReid/zor/internal/config"
	"github.com/JackWReid/zor/internal/spell"
	"github.com/JackWReid/zor/internal/terminal"
)

// Mode represents the editor mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "NORMAL"
	}
}

// Terminal is what the editor needs from the terminal.
type Terminal interface {
	ReadKey() (terminal.Key, error)
	Size() (rows, cols int, err error)
	Write(p []byte) (int, error)
	Resized() <-chan os.Signal
}

// App is the top-level editor state.
type App struct {
	doc       *Document
	viewport  *Viewport
	renderer  *Renderer
	statusBar *StatusBar
	command   *LineInput
	prompt    *LineInput
	search    searchSession
	commands  *spell.Commands
	log       *slog.Logger
	mode      Mode

	cx, cy int // Cursor in raw coordinates; cy may equal NumRows.
	rx     int // Rendered column of the cursor, refreshed before each frame.

	quitTimes     int
	quitRemaining int
	keepQuit      bool // The current key was part of a quit request.
	quit          bool
	quitAfterSave bool // Set by :wq on unnamed documents.
}

func NewApp(cfg config.Config, logger *slog.Logger) *App {
	cfg = config.Normalise(cfg)
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		doc:           NewDocument(cfg.TabStop, cfg.Profiles),
		viewport:      NewViewport(24, 80),
		renderer:      NewRenderer(),
		statusBar:     NewStatusBar(cfg.MessageTimeout),
		command:       NewLineInput(cfg.CommandCapacity),
		prompt:        NewLineInput(0),
		commands:      spell.NewCommands(spell.Vocabulary),
		log:           logger,
		mode:          ModeNormal,
		quitTimes:     cfg.QuitTimes,
		quitRemaining: cfg.QuitTimes,
	}
}

// Open loads path into the document.
func (a *App) Open(path string) error {
	if err := a.doc.Open(path); err != nil {
		return err
	}
	a.log.Info("opened file", "path", path, "rows", a.doc.NumRows(), "filetype", a.doc.FileType())
	return nil
}

// Document returns the document being edited.
func (a *App) Document() *Document { return a.doc }

// Run drives the editor until the user quits or input ends.
func (a *App) Run(t Terminal) error {
	if err := a.resize(t); err != nil {
		return err
	}
	a.render(t)

	for !a.quit {
		// Check for resize signal (non-blocking).
		select {
		case <-t.Resized():
			if err := a.resize(t); err != nil {
				return err
			}
			a.render(t)
			continue
		default:
		}

		key, err := t.ReadKey()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		a.HandleKey(key)
		if !a.quit {
			a.render(t)
		}
	}

	a.log.Info("quit", "dirty", a.doc.Dirty())
	if _, err := t.Write([]byte(ansi.EraseEntireScreen + ansi.CursorHomePosition)); err != nil {
		a.log.Error("clear screen", "err", err)
	}
	return nil
}

func (a *App) resize(t Terminal) error {
	rows, cols, err := t.Size()
	if err != nil {
		return fmt.Errorf("get window size: %w", err)
	}
	a.viewport.Resize(rows, cols)
	a.log.Debug("resize", "rows", rows, "cols", cols)
	return nil
}

// HandleKey applies one key event. The quit confirmation counter is
// reset unless the key took part in a quit request.
func (a *App) HandleKey(key terminal.Key) {
	a.keepQuit = false

	switch {
	case a.statusBar.Prompt == PromptSaveAs:
		a.handleSaveAsKey(key)
	case a.statusBar.Prompt == PromptSearch:
		a.handleSearchKey(key)
	case a.mode == ModeCommand:
		a.handleCommandKey(key)
	case a.mode == ModeInsert:
		a.handleInsertKey(key)
	default:
		a.handleNormalKey(key)
	}

	if !a.keepQuit {
		a.quitRemaining = a.quitTimes
	}
}

// Quit reports whether the editor has been asked to exit.
func (a *App) Quit() bool { return a.quit }

// requestQuit exits unless the document is dirty and confirmations remain.
func (a *App) requestQuit() {
	if a.doc.Dirty() && a.quitRemaining > 0 {
		a.statusBar.SetMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q or :q %d more times to quit.", a.quitRemaining)
		a.quitRemaining--
		a.keepQuit = true
		return
	}
	a.quit = true
}

// save writes the document, prompting for a filename when it has none.
func (a *App) save() {
	if a.doc.Filename() == "" {
		a.startPrompt(PromptSaveAs)
		return
	}
	a.writeDocument()
}

func (a *App) writeDocument() bool {
	n, err := a.doc.Save()
	if err != nil {
		a.statusBar.SetMessage("Can't save! I/O error: %v", err)
		a.log.Error("save failed", "path", a.doc.Filename(), "err", err)
		return false
	}
	a.statusBar.SetMessage("%d bytes written to disk", n)
	a.log.Info("saved", "path", a.doc.Filename(), "bytes", n)
	return true
}

func (a *App) startPrompt(p PromptType) {
	a.prompt.Reset()
	a.statusBar.Prompt = p
}

func (a *App) handleSaveAsKey(key terminal.Key) {
	switch {
	case key.Type == terminal.KeyBackspace || key.Type == terminal.KeyDelete:
		a.prompt.Backspace()
	case key.Type == terminal.KeyEscape:
		a.statusBar.Prompt = PromptNone
		a.quitAfterSave = false
		a.statusBar.SetMessage("Save aborted")
	case key.Type == terminal.KeyEnter:
		if a.prompt.Len() == 0 {
			return
		}
		a.statusBar.Prompt = PromptNone
		a.doc.SetFilename(a.prompt.String())
		ok := a.writeDocument()
		if ok && a.quitAfterSave {
			a.quit = true
		}
		a.quitAfterSave = false
	case key.IsPrintable():
		a.prompt.Append(key.Byte)
	}
}

// render reconciles the viewport with the cursor and draws a frame.
func (a *App) render(t Terminal) {
	a.rx = 0
	if row := a.doc.Row(a.cy); row != nil {
		a.rx = row.RawToRender(a.cx, a.doc.TabStop())
	}
	a.viewport.Scroll(a.cy, a.rx)

	statusLeft := a.statusBar.FormatLeft(a.mode, a.doc.Filename(), a.doc.NumRows(), a.doc.Dirty())
	statusRight := a.statusBar.FormatRight(a.doc.FileType(), a.cy+1, a.doc.NumRows())
	message := a.statusBar.MessageLine(a.mode, a.command.String(), a.prompt.String())

	frame := a.renderer.RenderFrame(a.doc, a.viewport, a.cy, a.rx, statusLeft, statusRight, message)
	if _, err := t.Write(frame); err != nil {
		a.log.Error("write frame", "err", err)
	}
}
