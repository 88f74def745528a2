package tui

import (
	"golang.design/x/clipboard"
)

func initClipboard() error {
	return clipboard.Init()
}

func readClipboard() string {
	return string(clipboard.Read(clipboard.FmtText))
}

func writeClipboard(value string) {
	clipboard.Write(clipboard.FmtText, []byte(value))
}
