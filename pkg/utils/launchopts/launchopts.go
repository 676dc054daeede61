// Package launchopts expands Steam-style launch options around a command.
//
// A launch option string such as
//
//	DXVK_ASYNC=1 gamemoderun %command% -windowed
//
// wraps the game's argument list: leading NAME=value words become
// environment assignments, %command% is replaced by the original arguments,
// and everything else is kept in place. Without %command% the words are
// appended after the original arguments.
package launchopts

import (
	"strings"
)

// CommandToken marks where the original argument list goes.
const CommandToken = "%command%"

// Assignment is a NAME=value prefix word.
type Assignment struct {
	Name  string
	Value string
}

// Template is a parsed launch option string.
type Template struct {
	// Env holds the NAME=value words in front of %command%.
	Env []Assignment

	words    []string
	hasToken bool
}

// Expansion is the result of applying launch options to an argument list.
type Expansion struct {
	Env  []Assignment
	Argv []string
}

// Parse splits options into a Template.
func Parse(options string) (Template, error) {
	words, err := Split(options)
	if err != nil {
		return Template{}, err
	}

	var tmpl Template
	for _, w := range words {
		if w == CommandToken {
			tmpl.hasToken = true
			break
		}
	}
	if !tmpl.hasToken {
		tmpl.words = words
		return tmpl, nil
	}

	leading := true
	for _, w := range words {
		if leading {
			if a, ok := parseAssignment(w); ok {
				tmpl.Env = append(tmpl.Env, a)
				continue
			}
			leading = false
		}
		tmpl.words = append(tmpl.words, w)
	}
	return tmpl, nil
}

// Apply places args into the template. The result never aliases args.
func (t Template) Apply(args []string) []string {
	if !t.hasToken {
		return append(append([]string{}, args...), t.words...)
	}
	argv := make([]string, 0, len(t.words)+len(args))
	for _, w := range t.words {
		if w == CommandToken {
			argv = append(argv, args...)
			continue
		}
		argv = append(argv, w)
	}
	return argv
}

// Expand applies options to args. Empty options return a copy of args.
func Expand(options string, args []string) (Expansion, error) {
	tmpl, err := Parse(options)
	if err != nil {
		return Expansion{}, err
	}
	return Expansion{Env: tmpl.Env, Argv: tmpl.Apply(args)}, nil
}

func parseAssignment(word string) (Assignment, bool) {
	name, value, ok := strings.Cut(word, "=")
	if !ok || !isName(name) {
		return Assignment{}, false
	}
	return Assignment{Name: name, Value: value}, true
}

func isName(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		switch {
		case ch == '_', ch >= 'A' && ch <= 'Z', ch >= 'a' && ch <= 'z':
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
