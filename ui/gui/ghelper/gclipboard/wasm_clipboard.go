//go:build js && wasm
// +build js,wasm

package gclipboard

import "errors"

func Unsupported() bool {
	return true
}

func WriteAll(text string) error {
	return errors.New("clipboard is not available in the browser build")
}
