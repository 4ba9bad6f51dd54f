// Package tui is a terminal front end for the event log. It renders the rows of an
// [eventview.Controller] and forwards key presses to it.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dhis2-sre/event-log/pkg/eventview"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const help = "[yellow]enter[white] edit  [yellow]d[white] delete  [yellow]tab[white] new event  [yellow]esc[white] cancel  [yellow]q[white] quit"

// View wires the widgets to the controller. Remote calls run off the UI goroutine and redraw when
// they complete.
type View struct {
	app        *tview.Application
	controller *eventview.Controller
	logger     *slog.Logger

	root     *tview.Flex
	create   *tview.InputField
	list     *tview.List
	edit     *tview.InputField
	status   *tview.TextView
	editShow bool
}

func New(app *tview.Application, controller *eventview.Controller, logger *slog.Logger) *View {
	v := &View{
		app:        app,
		controller: controller,
		logger:     logger,
	}

	v.create = tview.NewInputField().
		SetLabel("New event: ").
		SetChangedFunc(controller.SetCreateText).
		SetDoneFunc(v.createDone)
	v.create.SetBorder(true)

	v.list = tview.NewList().
		ShowSecondaryText(false).
		SetSelectedFunc(func(index int, _ string, _ string, _ rune) {
			v.startEditing(index)
		})
	v.list.SetBorder(true).SetTitle(" Events ")
	v.list.SetInputCapture(v.listInput)

	v.edit = tview.NewInputField().
		SetLabel("Edit: ").
		SetChangedFunc(controller.SetEditText).
		SetDoneFunc(v.editDone)
	v.edit.SetBorder(true)

	v.status = tview.NewTextView().SetDynamicColors(true)

	v.root = tview.NewFlex().SetDirection(tview.FlexRow)
	v.layout()
	v.render()

	return v
}

// Root returns the primitive to pass to [tview.Application.SetRoot].
func (v *View) Root() tview.Primitive {
	return v.root
}

// Load fetches the events in the background and shows them once they arrive.
func (v *View) Load(ctx context.Context) {
	v.setStatus("Loading...")
	go func() {
		err := v.controller.Load(ctx)
		v.app.QueueUpdateDraw(func() {
			if err != nil {
				v.logger.ErrorContext(ctx, "Failed to load events", "error", err)
				v.setStatus(fmt.Sprintf("[red]Failed to load events: %s", tview.Escape(err.Error())))
				return
			}
			v.render()
		})
	}()
}

func (v *View) createDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		v.submit()
	case tcell.KeyTab, tcell.KeyEscape:
		v.app.SetFocus(v.list)
	}
}

func (v *View) editDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		v.submit()
	case tcell.KeyEscape:
		v.controller.Cancel()
		v.render()
		v.app.SetFocus(v.list)
	}
}

func (v *View) listInput(event *tcell.EventKey) *tcell.EventKey {
	switch {
	case event.Key() == tcell.KeyTab:
		v.app.SetFocus(v.create)
		return nil
	case event.Key() == tcell.KeyEscape:
		v.controller.Cancel()
		v.render()
		return nil
	case event.Rune() == 'd':
		v.deleteSelected()
		return nil
	case event.Rune() == 'q':
		v.app.Stop()
		return nil
	}
	return event
}

func (v *View) startEditing(index int) {
	rows := v.controller.Rows()
	if index < 0 || index >= len(rows) {
		return
	}
	v.controller.Edit(rows[index].Event)
	v.render()
	v.app.SetFocus(v.edit)
}

func (v *View) deleteSelected() {
	rows := v.controller.Rows()
	index := v.list.GetCurrentItem()
	if index < 0 || index >= len(rows) {
		return
	}
	id := rows[index].Event.ID
	go func() {
		// The controller logs failures and keeps its state, so only the row count changes.
		err := v.controller.Delete(context.Background(), id)
		v.app.QueueUpdateDraw(func() {
			if err != nil {
				v.setStatus(fmt.Sprintf("[red]Failed to delete event %d", id))
				return
			}
			v.render()
		})
	}()
}

func (v *View) submit() {
	go func() {
		err := v.controller.Submit(context.Background())
		v.app.QueueUpdateDraw(func() {
			if err != nil {
				v.setStatus("[red]Failed to save event")
				return
			}
			v.render()
			v.app.SetFocus(v.create)
		})
	}()
}

// render syncs every widget with the controller. It must run on the UI goroutine.
func (v *View) render() {
	form := v.controller.Form()

	if v.create.GetText() != form.CreateText() {
		v.create.SetText(form.CreateText())
	}

	current := v.list.GetCurrentItem()
	v.list.Clear()
	for _, row := range v.controller.Rows() {
		v.list.AddItem(rowText(row), "", 0, nil)
	}
	if current >= 0 && current < v.list.GetItemCount() {
		v.list.SetCurrentItem(current)
	}

	_, editing := form.EditingID()
	if editing && v.edit.GetText() != form.EditText() {
		v.edit.SetText(form.EditText())
	}
	if editing != v.editShow {
		v.editShow = editing
		v.layout()
	}

	v.setStatus(help)
}

func (v *View) layout() {
	v.root.Clear()
	v.root.AddItem(v.create, 3, 0, true)
	v.root.AddItem(v.list, 0, 1, false)
	if v.editShow {
		v.root.AddItem(v.edit, 3, 0, false)
	}
	v.root.AddItem(v.status, 1, 0, false)
}

func (v *View) setStatus(text string) {
	v.status.SetText(text)
}

func rowText(row eventview.Row) string {
	if row.Editing {
		return "[yellow]> " + tview.Escape(row.Text) + "[white]"
	}
	return tview.Escape(row.String())
}
