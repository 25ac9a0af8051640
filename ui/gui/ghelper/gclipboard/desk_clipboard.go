//go:build !js && !wasm
// +build !js,!wasm

package gclipboard

import "github.com/atotto/clipboard"

// Unsupported reports whether no clipboard backend was found.
func Unsupported() bool {
	return clipboard.Unsupported
}

func WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
