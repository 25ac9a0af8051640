//go:build js && wasm
// +build js,wasm

package gdialog

import "errors"

var ErrCancelled = errors.New("Cancelled")

func OpenShapes(title string) (string, error) {
	return "", errors.New("file dialogs are not available in the browser build")
}
