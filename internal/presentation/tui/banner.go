package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the Strategos ASCII art banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`       _             _`, "#818cf8"},
		{`  ___ | |_ _ __ __ _| |_ ___  __ _  ___  ___`, "#a78bfa"},
		{` / __|| __| '__/ _` + "`" + ` | __/ _ \/ _` + "`" + ` |/ _ \/ __|`, "#c084fc"},
		{` \__ \| |_| | | (_| | ||  __/ (_| | (_) \__ \`, "#e879f9"},
		{` |___/ \__|_|  \__,_|\__\___|\__, |\___/|___/`, "#f472b6"},
		{`                             |___/`, "#fb7185"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
