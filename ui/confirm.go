package ui

// Confirmer is the explicit confirmation step in front of destructive
// commands: request a decision, then proceed or abort. A declined
// confirmation aborts before any network call.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// AlwaysConfirm suits hosts where the decision already happened upstream,
// e.g. a web form that carried an explicit confirm field.
var AlwaysConfirm = ConfirmFunc(func(string) bool { return true })
