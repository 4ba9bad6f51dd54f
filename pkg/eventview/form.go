package eventview

import "github.com/dhis2-sre/event-log/pkg/model"

// Mode tells which form a submit applies to.
type Mode int

const (
	// Idle is the mode before anything was typed and after every successful submit.
	Idle Mode = iota
	// Creating is entered on input into the create form.
	Creating
	// Editing is entered when an event is selected for editing. Its row is replaced by an inline form.
	Editing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}

// FormState holds the create form and the inline edit form. It is a value; every transition
// returns a new FormState.
//
// Transitions:
//
//	Idle     -> Creating  on create input
//	Creating -> Idle      on clearing the create buffer
//	Idle     -> Editing   on selecting an event
//	Creating -> Editing   on selecting an event, the create buffer is kept
//	Editing  -> Editing   on selecting another event, the edit buffer is reseeded
//	Editing  -> Idle      on cancel, or Creating if the create buffer holds text
//	any      -> Idle      on successful submit
type FormState struct {
	mode       Mode
	createText string
	editID     uint
	editText   string
}

func (f FormState) Mode() Mode {
	return f.mode
}

// CreateText returns the create buffer.
func (f FormState) CreateText() string {
	return f.createText
}

// EditText returns the edit buffer. It is empty unless the mode is Editing.
func (f FormState) EditText() string {
	return f.editText
}

// EditingID returns the id of the event being edited and true, or false if no event is being edited.
func (f FormState) EditingID() (uint, bool) {
	if f.mode != Editing {
		return 0, false
	}
	return f.editID, true
}

// IsEditing returns true if the event with the given id is being edited.
func (f FormState) IsEditing(id uint) bool {
	editID, ok := f.EditingID()
	return ok && editID == id
}

// WithCreateText replaces the create buffer.
func (f FormState) WithCreateText(text string) FormState {
	f.createText = text
	switch {
	case f.mode == Idle && text != "":
		f.mode = Creating
	case f.mode == Creating && text == "":
		f.mode = Idle
	}
	return f
}

// WithEditText replaces the edit buffer. It is a no-op unless an event is being edited.
func (f FormState) WithEditText(text string) FormState {
	if f.mode != Editing {
		return f
	}
	f.editText = text
	return f
}

// Editing starts editing the given event, seeding the edit buffer with its description. Any event
// edited before is dropped.
func (f FormState) Editing(event model.Event) FormState {
	f.mode = Editing
	f.editID = event.ID
	f.editText = event.Description
	return f
}

// Cancelled stops editing and drops the edit buffer. The create buffer is kept.
func (f FormState) Cancelled() FormState {
	if f.mode != Editing {
		return f
	}
	f.editID = 0
	f.editText = ""
	f.mode = Idle
	if f.createText != "" {
		f.mode = Creating
	}
	return f
}

// Cleared empties both buffers and stops editing.
func (FormState) Cleared() FormState {
	return FormState{}
}
