package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"go.uber.org/zap"

	"VectorBoard/internal/config"
	"VectorBoard/internal/render"
	"VectorBoard/internal/session"
)

// App ties a session to a window: the board, the toolbar and the dialogs the
// session asks for.
type App struct {
	window  fyne.Window
	session *session.Session
	board   *BoardWidget
	tools   *toolbar
	log     *zap.SugaredLogger
}

// NewApp builds the window contents inside a. The drawing at openPath, if
// any, is loaded first.
func NewApp(a fyne.App, cfg config.Config, log *zap.SugaredLogger, openPath string) (*App, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	list := render.NewDisplayList(cfg.Width, cfg.Height, cfg.Background.Color().Packed())
	s := session.New(list, cfg, log)
	if openPath != "" {
		if err := s.OpenFile(openPath); err != nil {
			return nil, err
		}
	}

	u := &App{
		window:  a.NewWindow("VectorBoard"),
		session: s,
		board:   NewBoardWidget(s, list),
		log:     log,
	}
	u.tools = newToolbar(u)
	u.board.OnInput = u.syncTools

	s.Confirm = u.confirm
	s.OnSave = u.showSave
	s.OnOpen = u.showOpen
	s.OnStatus = u.board.SetStatus

	content := container.NewBorder(u.tools.root, u.board.statusBar, nil, nil, u.board)
	u.window.SetContent(content)
	u.window.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	if dc, ok := u.window.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(u.board.KeyDown)
		dc.SetOnKeyUp(u.board.KeyUp)
	} else {
		log.Warnf("[UI] Canvas has no key events, keyboard controls are disabled")
	}
	return u, nil
}

// RunApp opens the board window and blocks until it is closed.
func RunApp(cfg config.Config, log *zap.SugaredLogger, openPath string) error {
	u, err := NewApp(app.New(), cfg, log, openPath)
	if err != nil {
		return err
	}
	u.window.ShowAndRun()
	return nil
}

// do runs a session action from a control and refreshes the board.
func (u *App) do(action func()) {
	action()
	u.board.Refresh()
	u.syncTools()
}

func (u *App) syncTools() {
	u.tools.sync(u.session)
}

func (u *App) confirm(question string, yes func()) {
	dialog.ShowConfirm("Clear Canvas", question, func(ok bool) {
		if !ok {
			u.board.SetStatus("Clear cancelled")
			return
		}
		u.do(yes)
	}, u.window)
}

func (u *App) showSave() {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			u.fail("Save", err)
			return
		}
		if w == nil {
			return
		}
		if err := u.session.Save(w); err != nil {
			w.Close()
			u.fail("Save", err)
			return
		}
		if err := w.Close(); err != nil {
			u.fail("Save", err)
			return
		}
		u.log.Infof("[UI] Saved %d shapes to %s", u.session.Collection().Len(), w.URI())
		u.board.SetStatus("Saved " + w.URI().Name())
	}, u.window)
	d.SetFileName("drawing.txt")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	d.Show()
}

func (u *App) showOpen() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			u.fail("Open", err)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()
		if err := u.session.Open(r); err != nil {
			u.fail("Open", err)
			return
		}
		u.board.Refresh()
		u.log.Infof("[UI] Opened %d shapes from %s", u.session.Collection().Len(), r.URI())
		u.board.SetStatus("Opened " + r.URI().Name())
	}, u.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	d.Show()
}

func (u *App) showExport() {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			u.fail("Export", err)
			return
		}
		if w == nil {
			return
		}
		title := strings.TrimSuffix(w.URI().Name(), w.URI().Extension())
		err = errors.Join(u.session.WritePDF(w, title), w.Close())
		if err != nil {
			u.fail("Export", err)
		}
	}, u.window)
	d.SetFileName("drawing.pdf")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.Show()
}

func (u *App) fail(op string, err error) {
	u.log.Errorf("[UI] %s failed: %v", op, err)
	u.board.SetStatus(op + " failed")
	dialog.ShowError(err, u.window)
}
