// Package model defines the data structures shared by every extraction stage.
package model

import "strings"

// Path represents a file system path, either on the host or inside a sandbox.
type Path string

// Source is the full text of one library file.
type Source struct {
	Path    Path   `json:"path"`
	Content string `json:"content"`
}

// ContentLines splits the content on line breaks. A trailing line break does
// not produce an empty last line and carriage returns are dropped.
func (s Source) ContentLines() []string {
	if s.Content == "" {
		return nil
	}

	content := strings.ReplaceAll(s.Content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")

	return strings.Split(content, "\n")
}

// Library describes the installed package a source file belongs to.
type Library struct {
	FQN         string `json:"fqn"`
	PackageName string `json:"package_name"`
	Root        Path   `json:"root"`
	Subfiles    []Path `json:"subfiles"`
	OpamShow    string `json:"opam_show"`
}
