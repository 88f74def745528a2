package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rewind/src/tui"
	"rewind/src/util"
)

func main() {
	path, err := util.ParseCommandLineArgs(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	initial := ""
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			os.Exit(1)
		}
		initial = string(content)
	}

	p := tea.NewProgram(tui.NewEditor(initial))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %s", err)
		os.Exit(1)
	}
}
