package xmlgen

import (
	"fmt"
	"strings"

	"github.com/signadot/xmlgen/model"
)

// DependencyGraph represents the association graph of the enabled classes.
// An edge A -> B means the procedure of A calls the procedure of B.
type DependencyGraph struct {
	// Nodes maps class name to class
	Nodes map[string]*model.Class

	// Order lists the class names in schema order
	Order []string

	// Edges maps class name to the class names it calls, in field order
	Edges map[string][]string
}

// Cycle represents a circular dependency detected in the graph.
type Cycle struct {
	// Path is the sequence of class names forming the cycle, first and
	// last equal
	Path []string
}

func (c *Cycle) String() string {
	return strings.Join(c.Path, " -> ")
}

// BuildDependencyGraph builds the dependency graph of classes as present
// in version. Associations to classes outside of classes are ignored.
func BuildDependencyGraph(classes []*model.Class, version string) *DependencyGraph {
	graph := &DependencyGraph{
		Nodes: make(map[string]*model.Class),
		Edges: make(map[string][]string),
	}
	for _, c := range classes {
		graph.Nodes[c.Name] = c
		graph.Order = append(graph.Order, c.Name)
	}
	for _, c := range classes {
		graph.Edges[c.Name] = findDependencies(c, version, graph.Nodes)
	}
	return graph
}

// findDependencies lists the classes the fields of c associate to.
func findDependencies(c *model.Class, version string, nodes map[string]*model.Class) []string {
	var deps []string
	seen := make(map[string]bool)
	for _, f := range c.AllFields(version) {
		var target *model.Class
		switch k := f.Kind.(type) {
		case *model.Single:
			if f.Attribute {
				continue
			}
			target = k.Target
		case *model.Many:
			target = k.Target
		}
		if target == nil || nodes[target.Name] != target || seen[target.Name] {
			continue
		}
		seen[target.Name] = true
		deps = append(deps, target.Name)
	}
	return deps
}

// DetectCycles detects circular dependencies in the dependency graph using
// DFS. Returns nil if no cycles exist.
func DetectCycles(graph *DependencyGraph) []*Cycle {
	var cycles []*Cycle
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, name := range graph.Order {
		if !visited[name] {
			cycles = append(cycles, detectCyclesDFS(graph, name, visited, recStack, nil)...)
		}
	}
	return cycles
}

func detectCyclesDFS(graph *DependencyGraph, node string, visited, recStack map[string]bool, path []string) []*Cycle {
	var cycles []*Cycle

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range graph.Edges[node] {
		if !visited[dep] {
			cycles = append(cycles, detectCyclesDFS(graph, dep, visited, recStack, path)...)
		} else if recStack[dep] {
			cycles = append(cycles, &Cycle{Path: findCyclePath(path, dep)})
		}
	}

	recStack[node] = false
	return cycles
}

// findCyclePath extracts the cycle closing at cycleStart from the DFS path.
func findCyclePath(path []string, cycleStart string) []string {
	startIdx := -1
	for i, name := range path {
		if name == cycleStart {
			startIdx = i
			break
		}
	}
	if startIdx == -1 {
		return append(append([]string{}, path...), cycleStart)
	}
	cycle := make([]string, 0, len(path)-startIdx+1)
	cycle = append(cycle, path[startIdx:]...)
	return append(cycle, cycleStart)
}

// FormatCycles formats cycles for display, one per line.
func FormatCycles(cycles []*Cycle) string {
	msgs := make([]string, len(cycles))
	for i, c := range cycles {
		msgs[i] = "  " + c.String()
	}
	return fmt.Sprintf("association cycles:\n%s", strings.Join(msgs, "\n"))
}
