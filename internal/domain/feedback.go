package domain

import (
	"encoding/json"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

const (
	qualidTag         = "Ser_Qualid"
	hypothesisMarker  = "Hypothesis of the goal context."
	declarationMarker = "Declared in"
)

var (
	declarationPattern = regexp.MustCompile(
		`Declared in\s+(?:File\s+"([^"]+)"|library ([^,]+)), line (\d+(?:-\d+)?), characters (\d+(?:-\d+)?)`)
	loadPathPattern = regexp.MustCompile(`(?m)^([A-Za-z0-9_]+)[ \t]+(\S+)[ \t]*$`)
	locatePattern   = regexp.MustCompile(`(?m)^Module[ \t]+([A-Za-z0-9_.]+)`)
	requirePattern  = regexp.MustCompile(
		`(?m)^[ \t]*((?:From\s+\S+\s+)?Require\s+(?:(?:Import|Export)\s+)?([^;]+?)[.;](?:\s|$))`)
	moduleSeparator = regexp.MustCompile(`[\s,]+`)
)

// parseAbout reads the answer of an About command. It returns false when
// the answer names neither a hypothesis nor a located declaration.
func parseAbout(message string) (m.Dependency, bool) {
	name, _, _ := strings.Cut(message, " :")
	name = strings.TrimSpace(name)

	if strings.Contains(message, hypothesisMarker) {
		return m.Dependency{Name: name, Kind: m.DependencyHypothesis}, true
	}

	if !strings.Contains(message, declarationMarker) {
		return m.Dependency{}, false
	}

	match := declarationPattern.FindStringSubmatch(message)
	if match == nil {
		slog.Warn("Unrecognized declaration location", "name", name, "message", message)
		return m.Dependency{}, false
	}

	origin := match[1]
	if origin == "" {
		origin = match[2]
	}

	lineStart, lineEnd := parseSpan(match[3])
	charStart, charEnd := parseSpan(match[4])

	return m.Dependency{
		Origin: origin,
		Name:   name,
		Kind:   m.DependencyPremise,
		Range: &m.Range{
			Start: m.Position{Line: lineStart, Character: charStart},
			End:   m.Position{Line: lineEnd, Character: charEnd},
		},
	}, true
}

// parseSpan reads "a" or "a-b".
func parseSpan(text string) (int, int) {
	from, to, found := strings.Cut(text, "-")

	start, _ := strconv.Atoi(from)
	if !found {
		return start, start
	}

	end, _ := strconv.Atoi(to)

	return start, end
}

// parseLoadPath maps every top-level logical root of a Print LoadPath
// answer to its directory. The first occurrence of a root wins.
func parseLoadPath(message string) m.LoadPath {
	roots := m.LoadPath{}

	for _, match := range loadPathPattern.FindAllStringSubmatch(message, -1) {
		if _, seen := roots[match[1]]; !seen {
			roots[match[1]] = match[2]
		}
	}

	return roots
}

func parseLocate(message string) []string {
	var modules []string

	for _, match := range locatePattern.FindAllStringSubmatch(message, -1) {
		// "Module Type X" names a signature, not a module.
		if match[1] != "Type" {
			modules = append(modules, match[1])
		}
	}

	return modules
}

// requiredModule is one module named by a Require command and the span of
// that command.
type requiredModule struct {
	Name  string
	Range m.Range
}

// requiredModules lists the modules of every Require command of source, in
// order of appearance.
func requiredModules(source m.Source) []requiredModule {
	content := strings.ReplaceAll(source.Content, "\r\n", "\n")
	index := newPositionIndex(content)

	var modules []requiredModule

	for _, loc := range requirePattern.FindAllStringSubmatchIndex(content, -1) {
		command := strings.TrimRight(content[loc[2]:loc[3]], " \t\n")
		span := m.Range{
			Start: index.position(loc[2]),
			End:   index.position(loc[2] + len(command)),
		}

		for _, name := range moduleSeparator.Split(strings.TrimSpace(content[loc[4]:loc[5]]), -1) {
			if name != "" {
				modules = append(modules, requiredModule{Name: name, Range: span})
			}
		}
	}

	return modules
}

// positionIndex converts byte offsets of a text into positions counted in
// code points.
type positionIndex struct {
	content    string
	lineStarts []int
}

func newPositionIndex(content string) positionIndex {
	starts := []int{0}

	for i := range len(content) {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return positionIndex{content: content, lineStarts: starts}
}

func (p positionIndex) position(offset int) m.Position {
	line, found := slices.BinarySearch(p.lineStarts, offset)
	if !found {
		line--
	}

	start := p.lineStarts[line]

	return m.Position{Line: line, Character: utf8.RuneCountInString(p.content[start:offset])}
}

// qualifiedNames returns the distinct qualified identifiers referenced by a
// syntax tree, in the order they are met.
func qualifiedNames(ast json.RawMessage) []string {
	if len(ast) == 0 {
		return nil
	}

	var tree any
	if err := json.Unmarshal(ast, &tree); err != nil {
		slog.Debug("Unreadable syntax tree", "error", err)
		return nil
	}

	if root, ok := tree.(map[string]any); ok {
		if v, ok := root["v"].(map[string]any); ok {
			if expr, ok := v["expr"]; ok {
				tree = expr
			}
		}
	}

	var names []string

	collectQualids(tree, &names)

	seen := make(map[string]bool, len(names))
	distinct := names[:0]

	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			distinct = append(distinct, name)
		}
	}

	return distinct
}

func collectQualids(node any, names *[]string) {
	switch value := node.(type) {
	case []any:
		if len(value) >= 3 && value[0] == qualidTag {
			if name, ok := qualidName(value[1], value[2]); ok {
				*names = append(*names, name)
			}

			value = value[3:]
		}

		for _, child := range value {
			collectQualids(child, names)
		}
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(value)) {
			collectQualids(value[key], names)
		}
	}
}

// qualidName joins ["DirPath", [["Id", "A"], ...]] and ["Id", "x"] into
// "A.x".
func qualidName(dirPath, id any) (string, bool) {
	var parts []string

	if path, ok := dirPath.([]any); ok && len(path) >= 2 {
		segments, _ := path[1].([]any)
		for _, segment := range segments {
			part, ok := identifier(segment)
			if !ok {
				return "", false
			}

			parts = append(parts, part)
		}
	}

	name, ok := identifier(id)
	if !ok {
		return "", false
	}

	return strings.Join(append(parts, name), "."), true
}

func identifier(node any) (string, bool) {
	pair, ok := node.([]any)
	if !ok || len(pair) < 2 {
		return "", false
	}

	name, ok := pair[1].(string)

	return name, ok && name != ""
}
