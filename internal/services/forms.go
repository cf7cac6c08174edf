package services

import "context"

// FormState is the lifecycle state of an entity form dialog.
type FormState int

const (
	FormClosed FormState = iota
	FormOpen
	FormSubmitting
)

// FormMode distinguishes the create dialog from the edit dialog.
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)

// FormSession drives one entity form dialog: open with a seed record or an
// existing one, edit the record in place, submit. A failed submit keeps the
// dialog open with the draft and the error; a successful one closes it.
type FormSession[T any] struct {
	state  FormState
	mode   FormMode
	id     string
	Record T
	Err    error
}

// State returns the current dialog state.
func (f *FormSession[T]) State() FormState {
	return f.state
}

// Mode returns whether the dialog creates or edits. Only meaningful while
// the dialog is open.
func (f *FormSession[T]) Mode() FormMode {
	return f.mode
}

// ID returns the id of the record being edited, empty in create mode.
func (f *FormSession[T]) ID() string {
	return f.id
}

// IsOpen reports whether the dialog is visible.
func (f *FormSession[T]) IsOpen() bool {
	return f.state != FormClosed
}

// OpenCreate opens the dialog in create mode seeded with form defaults.
func (f *FormSession[T]) OpenCreate(seed T) {
	f.state = FormOpen
	f.mode = ModeCreate
	f.id = ""
	f.Record = seed
	f.Err = nil
}

// OpenEdit opens the dialog in edit mode seeded with the stored record.
func (f *FormSession[T]) OpenEdit(id string, record T) {
	f.state = FormOpen
	f.mode = ModeEdit
	f.id = id
	f.Record = record
	f.Err = nil
}

// Close dismisses the dialog, discarding the draft.
func (f *FormSession[T]) Close() {
	var zero T
	f.state = FormClosed
	f.id = ""
	f.Record = zero
	f.Err = nil
}

// Submit routes the draft to create or update depending on the dialog mode.
// The dialog closes on success and stays open with the draft and error on
// failure. Submitting a closed dialog is a no-op.
func (f *FormSession[T]) Submit(ctx context.Context,
	create func(ctx context.Context, record T) error,
	update func(ctx context.Context, id string, record T) error) error {

	if f.state != FormOpen {
		return f.Err
	}

	f.state = FormSubmitting
	f.Err = nil

	var err error
	if f.mode == ModeCreate {
		err = create(ctx, f.Record)
	} else {
		err = update(ctx, f.id, f.Record)
	}

	if err != nil {
		f.state = FormOpen
		f.Err = err
		return err
	}

	f.Close()
	return nil
}
