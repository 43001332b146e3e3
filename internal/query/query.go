// Package query builds GraphQL operations as in-memory descriptors and
// renders them to query text.
package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const indentUnit = "  "

// Selection is a member of a selection set: a Field or an InlineFragment.
type Selection interface {
	write(b *strings.Builder, depth int)
}

// SelectionSet is an ordered list of selections.
type SelectionSet []Selection

// Argument binds a field argument to a rendered value, see Var, Int and String.
type Argument struct {
	Name  string
	Value string
}

// Field selects a named field, optionally aliased, with arguments and sub-selections.
type Field struct {
	Name       string
	Alias      string
	Arguments  []Argument
	Selections SelectionSet
}

// InlineFragment is a `... on Type { ... }` selection.
type InlineFragment struct {
	On         string
	Selections SelectionSet
}

// Variable is a declared operation variable and the value sent with it.
type Variable struct {
	Name  string
	Type  string
	Value interface{}
}

// Query is a complete GraphQL operation.
type Query struct {
	Operation  string
	Name       string
	Variables  []Variable
	Selections SelectionSet
}

// Var references the operation variable name.
func Var(name string) string { return "$" + name }

// Int renders an integer literal.
func Int(n int) string { return strconv.Itoa(n) }

// String renders a quoted string literal.
func String(s string) string { return strconv.Quote(s) }

// Fields returns a selection set of plain scalar fields.
func Fields(names ...string) SelectionSet {
	set := make(SelectionSet, 0, len(names))
	for _, name := range names {
		set = append(set, Field{Name: name})
	}
	return set
}

// Object selects name with the given sub-selections.
func Object(name string, selections SelectionSet) Field {
	return Field{Name: name, Selections: selections}
}

// PageInfo is the pageInfo selection requested on every connection.
func PageInfo() Field {
	return Object("pageInfo", Fields("hasNextPage", "hasPreviousPage"))
}

// Connection selects a paginated connection:
//
//	name(args) { pageInfo { ... } edges { cursor node { ... } } }
func Connection(name string, args []Argument, node SelectionSet) Field {
	return Field{
		Name:      name,
		Arguments: args,
		Selections: SelectionSet{
			PageInfo(),
			Object("edges", SelectionSet{
				Field{Name: "cursor"},
				Object("node", node),
			}),
		},
	}
}

func (f Field) write(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat(indentUnit, depth))
	if f.Alias != "" {
		b.WriteString(f.Alias)
		b.WriteString(": ")
	}
	b.WriteString(f.Name)
	if len(f.Arguments) > 0 {
		b.WriteString("(")
		for i, arg := range f.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(": ")
			b.WriteString(arg.Value)
		}
		b.WriteString(")")
	}
	if len(f.Selections) > 0 {
		b.WriteString(" ")
		f.Selections.write(b, depth)
	}
}

func (f InlineFragment) write(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString("... on ")
	b.WriteString(f.On)
	b.WriteString(" ")
	f.Selections.write(b, depth)
}

func (s SelectionSet) write(b *strings.Builder, depth int) {
	b.WriteString("{\n")
	for _, sel := range s {
		sel.write(b, depth+1)
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString("}")
}

// String renders the operation as GraphQL text.
func (q *Query) String() string {
	var b strings.Builder
	op := q.Operation
	if op == "" {
		op = "query"
	}
	b.WriteString(op)
	if q.Name != "" {
		b.WriteString(" ")
		b.WriteString(q.Name)
	}
	if len(q.Variables) > 0 {
		b.WriteString("(")
		for i, v := range q.Variables {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("$")
			b.WriteString(v.Name)
			b.WriteString(": ")
			b.WriteString(v.Type)
		}
		b.WriteString(")")
	}
	b.WriteString(" ")
	q.Selections.write(&b, 0)
	return b.String()
}

// VariableValues returns the values to send alongside the query text.
func (q *Query) VariableValues() map[string]interface{} {
	if len(q.Variables) == 0 {
		return nil
	}
	values := make(map[string]interface{}, len(q.Variables))
	for _, v := range q.Variables {
		values[v.Name] = v.Value
	}
	return values
}

// Validate checks that every referenced variable is declared and every
// declared variable carries a value.
func (q *Query) Validate() error {
	if len(q.Selections) == 0 {
		return fmt.Errorf("query %q has an empty selection set", q.Name)
	}
	declared := make(map[string]bool, len(q.Variables))
	for _, v := range q.Variables {
		if v.Name == "" || v.Type == "" {
			return fmt.Errorf("query %q declares a variable without name or type", q.Name)
		}
		if v.Value == nil {
			return fmt.Errorf("query %q: variable $%s has no value", q.Name, v.Name)
		}
		declared[v.Name] = true
	}

	used := map[string]bool{}
	collectVariables(q.Selections, used)
	var missing []string
	for name := range used {
		if !declared[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("query %q references undeclared variables: $%s", q.Name, strings.Join(missing, ", $"))
	}
	return nil
}

func collectVariables(set SelectionSet, used map[string]bool) {
	for _, sel := range set {
		switch s := sel.(type) {
		case Field:
			for _, arg := range s.Arguments {
				if strings.HasPrefix(arg.Value, "$") {
					used[strings.TrimPrefix(arg.Value, "$")] = true
				}
			}
			collectVariables(s.Selections, used)
		case InlineFragment:
			collectVariables(s.Selections, used)
		}
	}
}
