package ui

import (
	"fmt"

	"PaintBoard/internal/config"
	"PaintBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
)

// NewWindow assembles the board, toolbar and status bar in a window of a.
func NewWindow(a fyne.App, cfg config.Config, model *state.Drawing) (fyne.Window, *BoardWidget, error) {
	bg, err := state.ParseColor(cfg.Background)
	if err != nil {
		return nil, nil, fmt.Errorf("background: %w", err)
	}

	myWindow := a.NewWindow("PaintBoard")
	size := fyne.NewSize(float32(cfg.Width), float32(cfg.Height))
	board := NewBoardWidget(model, bg, size)

	toolbar := NewToolbar(board, ToolbarOptions{
		Palette:  cfg.Palette,
		MinWidth: cfg.MinStrokeWidth,
		MaxWidth: cfg.MaxStrokeWidth,
		OnSave: func() {
			d := dialog.NewFileSave(board.SaveToFile, myWindow)
			d.SetFileName(cfg.ExportName)
			d.Show()
		},
	})

	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyZ,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) { board.Undo() })
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyZ,
		Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift,
	}, func(fyne.Shortcut) { board.Redo() })

	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, board)
	myWindow.SetContent(content)
	myWindow.Resize(content.MinSize())
	return myWindow, board, nil
}

// RunApp opens the main window and blocks until it is closed.
func RunApp(cfg config.Config, model *state.Drawing) error {
	myApp := app.New()
	myWindow, _, err := NewWindow(myApp, cfg, model)
	if err != nil {
		return err
	}
	myWindow.ShowAndRun()
	return nil
}
