//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import "github.com/sqweek/dialog"

// ErrCancelled is returned when the user closes the picker.
var ErrCancelled = dialog.ErrCancelled

// OpenShapes asks for a polyomino shape file and returns its path.
func OpenShapes(title string) (string, error) {
	return dialog.File().Title(title).Filter("Shape files", "txt").Filter("All files", "*").Load()
}
