package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/phroun/idtree"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive shell over a tree of strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "idtree REPL - arena tree playground")
			fmt.Fprintln(cmd.OutOrStdout(), "Type 'help' for available commands, 'quit' to exit")
			fmt.Fprintln(cmd.OutOrStdout())

			r := newREPL(cmd.InOrStdin(), cmd.OutOrStdout(), a.newTree)
			return r.Run()
		},
	}
}

// REPL holds the state of the interactive session
type REPL struct {
	tree    *idtree.Tree[string]
	newTree func() *idtree.Tree[string]
	reader  *bufio.Reader
	out     io.Writer
	prompt  string
	styles  replStyles
}

type replStyles struct {
	id     lipgloss.Style
	data   lipgloss.Style
	branch lipgloss.Style
	err    lipgloss.Style
}

func newREPL(in io.Reader, out io.Writer, newTree func() *idtree.Tree[string]) *REPL {
	r := lipgloss.NewRenderer(out)
	return &REPL{
		tree:    newTree(),
		newTree: newTree,
		reader:  bufio.NewReader(in),
		out:     out,
		prompt:  "idtree> ",
		styles: replStyles{
			id:     r.NewStyle().Foreground(lipgloss.Color(colorGray)),
			data:   r.NewStyle().Bold(true),
			branch: r.NewStyle().Foreground(lipgloss.Color(colorLight)),
			err:    r.NewStyle().Foreground(lipgloss.Color(colorRed)),
		},
	}
}

// Run reads and executes commands until quit or end of input.
func (r *REPL) Run() error {
	for {
		fmt.Fprint(r.out, r.prompt)
		input, err := r.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(input) == "") {
			fmt.Fprintln(r.out, "\nGoodbye!")
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !r.handleCommand(input) {
			return nil
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts, err := shlex.Split(input)
	if err != nil {
		r.fail(fmt.Errorf("parse: %w", err))
		return true
	}
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Fprintln(r.out, "Goodbye!")
		return false

	case "new":
		r.cmdNew(args)

	case "root":
		r.cmdRoot()

	case "status":
		r.cmdStatus()

	case "insert":
		r.cmdInsert(args)

	case "get":
		r.cmdGet(args)

	case "set":
		r.cmdSet(args)

	case "remove":
		r.cmdRemove(args)

	case "move":
		r.cmdMove(args)

	case "swap":
		r.cmdSwap(args)

	case "sort":
		r.cmdSort(args)

	case "ancestors":
		r.cmdList(args, r.tree.AncestorIDs)

	case "children":
		r.cmdList(args, r.tree.ChildIDs)

	case "pre":
		r.cmdWalk(args, r.tree.PreOrderIDs)

	case "post":
		r.cmdWalk(args, r.tree.PostOrderIDs)

	case "level":
		r.cmdWalk(args, r.tree.LevelOrderIDs)

	case "tree":
		r.cmdTree()

	case "check":
		r.cmdCheck()

	default:
		fmt.Fprintf(r.out, "Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

TREE:
  new [root]                      Start a new tree, optionally with a root value
  root                            Show the root id
  status                          Show node count and height
  check                           Verify the tree's links

NODES:
  insert <data> [under <id>]      Insert a node (as the new root without 'under')
  get <id>                        Show a node and its links
  set <id> <data>                 Replace a node's data
  remove <id> [drop|lift]         Remove a node, dropping or lifting its children
  move <id> <parent>|root         Move a node (and its subtree)
  swap <a> <b> [data|subtrees|nodes]
                                  Swap two nodes (default: data)
  sort <id>                       Sort a node's children by data

TRAVERSAL:
  ancestors <id>                  List a node and its ancestors
  children <id>                   List a node's children
  pre|post|level [id]             Walk a subtree (default: the root)
  tree                            Draw the whole tree

Ids are written index:generation, as printed by insert. Quote data
containing spaces: insert "two words" under 0:1

OTHER:
  help                            Show this help message
  quit, exit                      Exit the REPL
`
	fmt.Fprintln(r.out, help)
}

func (r *REPL) fail(err error) {
	fmt.Fprintln(r.out, r.styles.err.Render("Error: "+err.Error()))
}

func (r *REPL) usage(text string) {
	fmt.Fprintln(r.out, "Usage: "+text)
}

// parseID parses a node id argument, reporting failures itself.
func (r *REPL) parseID(s string) (idtree.NodeID, bool) {
	id, err := idtree.ParseNodeID(s)
	if err != nil {
		r.fail(err)
		return idtree.NodeID{}, false
	}
	return id, true
}

func (r *REPL) label(id idtree.NodeID, data string) string {
	return r.styles.data.Render(data) + " " + r.styles.id.Render("["+id.String()+"]")
}

func (r *REPL) cmdNew(args []string) {
	if len(args) > 1 {
		r.usage("new [root]")
		return
	}
	r.tree = r.newTree()
	if len(args) == 1 {
		if _, err := r.tree.Insert(args[0], idtree.AsRoot()); err != nil {
			r.fail(err)
			return
		}
	}
	fmt.Fprintf(r.out, "New tree (root %v)\n", r.tree.Root())
}

func (r *REPL) cmdRoot() {
	if r.tree.IsEmpty() {
		fmt.Fprintln(r.out, "(empty)")
		return
	}
	fmt.Fprintln(r.out, r.tree.Root())
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "Nodes:  %d\n", r.tree.Len())
	fmt.Fprintf(r.out, "Height: %d\n", r.tree.Height())
	fmt.Fprintf(r.out, "Root:   %v\n", r.tree.Root())
}

func (r *REPL) cmdInsert(args []string) {
	behavior := idtree.AsRoot()
	switch {
	case len(args) == 1:
	case len(args) == 3 && strings.EqualFold(args[1], "under"):
		parent, ok := r.parseID(args[2])
		if !ok {
			return
		}
		behavior = idtree.UnderNode(parent)
	default:
		r.usage("insert <data> [under <id>]")
		return
	}

	id, err := r.tree.Insert(args[0], behavior)
	if err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintf(r.out, "Inserted %v\n", id)
}

func (r *REPL) cmdGet(args []string) {
	if len(args) != 1 {
		r.usage("get <id>")
		return
	}
	id, ok := r.parseID(args[0])
	if !ok {
		return
	}
	n, err := r.tree.Get(id)
	if err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintln(r.out, r.label(id, n.Data()))
	fmt.Fprintf(r.out, "  parent:   %v\n", n.Parent())
	fmt.Fprintf(r.out, "  children: %v .. %v\n", n.FirstChild(), n.LastChild())
	fmt.Fprintf(r.out, "  siblings: %v .. %v\n", n.PrevSibling(), n.NextSibling())
}

func (r *REPL) cmdSet(args []string) {
	if len(args) != 2 {
		r.usage("set <id> <data>")
		return
	}
	id, ok := r.parseID(args[0])
	if !ok {
		return
	}
	n, err := r.tree.Get(id)
	if err != nil {
		r.fail(err)
		return
	}
	n.SetData(args[1])
	fmt.Fprintf(r.out, "Set %v\n", id)
}

func (r *REPL) cmdRemove(args []string) {
	if len(args) < 1 || len(args) > 2 {
		r.usage("remove <id> [drop|lift]")
		return
	}
	id, ok := r.parseID(args[0])
	if !ok {
		return
	}

	behavior := idtree.DropChildren
	if len(args) == 2 {
		switch strings.ToLower(args[1]) {
		case "drop":
		case "lift":
			behavior = idtree.LiftChildren
		default:
			r.usage("remove <id> [drop|lift]")
			return
		}
	}

	data, err := r.tree.Remove(id, behavior)
	if err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintf(r.out, "Removed %s (%v)\n", r.label(id, data), behavior)
}

func (r *REPL) cmdMove(args []string) {
	if len(args) != 2 {
		r.usage("move <id> <parent>|root")
		return
	}
	id, ok := r.parseID(args[0])
	if !ok {
		return
	}

	behavior := idtree.ToRoot()
	if !strings.EqualFold(args[1], "root") {
		parent, ok := r.parseID(args[1])
		if !ok {
			return
		}
		behavior = idtree.ToParent(parent)
	}

	if err := r.tree.MoveNode(id, behavior); err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintf(r.out, "Moved %v\n", id)
}

func (r *REPL) cmdSwap(args []string) {
	if len(args) < 2 || len(args) > 3 {
		r.usage("swap <a> <b> [data|subtrees|nodes]")
		return
	}
	first, ok := r.parseID(args[0])
	if !ok {
		return
	}
	second, ok := r.parseID(args[1])
	if !ok {
		return
	}

	behavior := idtree.SwapDataOnly
	if len(args) == 3 {
		switch strings.ToLower(args[2]) {
		case "data":
		case "subtrees":
			behavior = idtree.SwapSubtrees
		case "nodes":
			behavior = idtree.SwapNodesOnly
		default:
			r.usage("swap <a> <b> [data|subtrees|nodes]")
			return
		}
	}

	if err := r.tree.SwapNodes(first, second, behavior); err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintf(r.out, "Swapped %v and %v (%v)\n", first, second, behavior)
}

func (r *REPL) cmdSort(args []string) {
	if len(args) != 1 {
		r.usage("sort <id>")
		return
	}
	id, ok := r.parseID(args[0])
	if !ok {
		return
	}
	if err := idtree.SortChildrenByData(r.tree, id); err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintf(r.out, "Sorted children of %v\n", id)
}

// cmdList prints one node per line from an id sequence starting at the
// given id.
func (r *REPL) cmdList(args []string, seq func(idtree.NodeID) iter.Seq2[idtree.NodeID, error]) {
	if len(args) != 1 {
		r.usage("ancestors|children <id>")
		return
	}
	start, ok := r.parseID(args[0])
	if !ok {
		return
	}

	count := 0
	for id, err := range seq(start) {
		if err != nil {
			r.fail(err)
			return
		}
		fmt.Fprintf(r.out, "  %s\n", r.label(id, r.tree.GetUnchecked(id).Data()))
		count++
	}
	if count == 0 {
		fmt.Fprintln(r.out, "  (none)")
	}
}

// cmdWalk prints a subtree walk on one line as id=data pairs.
func (r *REPL) cmdWalk(args []string, walk func(idtree.NodeID) iter.Seq2[idtree.NodeID, error]) {
	if len(args) > 1 {
		r.usage("pre|post|level [id]")
		return
	}
	start := r.tree.Root()
	if len(args) == 1 {
		id, ok := r.parseID(args[0])
		if !ok {
			return
		}
		start = id
	}

	var labels []string
	for id, err := range walk(start) {
		if err != nil {
			r.fail(err)
			return
		}
		labels = append(labels, r.label(id, r.tree.GetUnchecked(id).Data()))
	}
	fmt.Fprintln(r.out, strings.Join(labels, ", "))
}

func (r *REPL) cmdTree() {
	if r.tree.IsEmpty() {
		fmt.Fprintln(r.out, "(empty)")
		return
	}

	type frame struct {
		id     idtree.NodeID
		prefix string
		last   bool
		top    bool
	}

	stack := []frame{{id: r.tree.Root(), top: true}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := r.tree.GetUnchecked(f.id)
		childPrefix := f.prefix
		switch {
		case f.top:
			fmt.Fprintln(r.out, r.label(f.id, n.Data()))
		case f.last:
			fmt.Fprintln(r.out, r.styles.branch.Render(f.prefix+"└── ")+r.label(f.id, n.Data()))
			childPrefix += "    "
		default:
			fmt.Fprintln(r.out, r.styles.branch.Render(f.prefix+"├── ")+r.label(f.id, n.Data()))
			childPrefix += "│   "
		}

		// Push children last to first so they print in order.
		last := true
		for c := n.LastChild(); !c.IsZero(); c = r.tree.GetUnchecked(c).PrevSibling() {
			stack = append(stack, frame{id: c, prefix: childPrefix, last: last})
			last = false
		}
	}
}

func (r *REPL) cmdCheck() {
	if err := r.tree.CheckInvariants(); err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintf(r.out, "OK (%d nodes)\n", r.tree.Len())
}
