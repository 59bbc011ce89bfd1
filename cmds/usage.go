package cmds

import (
	"fmt"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p, p.commands, 0)
}

func printCommands(p *Executor, commands map[string]*Command, depth int) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		command := commands[name]
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}
		line := strings.Repeat("  ", depth) + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(p.output, line)
		if len(command.Subs) > 0 {
			printCommands(p, command.Subs, depth+1)
		}
	}
}
