// zipper-repl is an interactive demo for the zipper library. It lets you
// load a sequence of integers, walk a cursor across it, edit the focus, and
// run the peak algorithms, printing the zipper's three parts after each step.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/schmmd/zipper"
)

// REPL holds the state of the interactive session
type REPL struct {
	z      zipper.Zipper[int]
	loaded bool
	reader *bufio.Reader
}

func main() {
	fmt.Println("Zipper REPL - Interactive Cursor Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		reader: bufio.NewReader(os.Stdin),
	}

	// Main loop
	for {
		fmt.Print("zipper> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "new":
		r.cmdNew(args)

	case "show":
		r.cmdShow()

	case "left":
		r.cmdMove(-1)

	case "right":
		r.cmdMove(1)

	case "rewind":
		r.cmdRewind()

	case "end":
		r.cmdEnd()

	case "seek":
		r.cmdSeek(args)

	case "set":
		r.cmdSet(args)

	case "add":
		r.cmdAdd(args)

	case "insert":
		r.cmdInsert(args)

	case "delete":
		r.cmdDelete()

	case "positions":
		r.cmdPositions()

	case "peak":
		r.cmdPeak()

	case "raise":
		r.cmdRaise()

	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

SEQUENCE OPERATIONS:
  new <n> <n> ...         Load a new sequence of integers
  show                    Show the zipper (left context, focus, right context)
  positions               List every cursor placement over the sequence

CURSOR OPERATIONS:
  left                    Move the cursor one position left
  right                   Move the cursor one position right
  rewind                  Move the cursor to the first position
  end                     Move the cursor to the last position
  seek <offset>           Move the cursor to an absolute offset

EDIT OPERATIONS (each produces a new zipper):
  set <n>                 Replace the focus with n
  add <n>                 Add n to the focus
  insert left|right <n>   Insert n beside the focus
  delete                  Remove the focus

ALGORITHMS:
  peak                    Find the leftmost peak in the sequence
  raise                   Raise the leftmost peak by one and show the result

OTHER:
  help                    Show this help message
  quit, exit              Exit the REPL
`
	fmt.Println(help)
}

func (r *REPL) cmdNew(args []string) {
	vals := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			fmt.Printf("Not an integer: %s\n", a)
			return
		}
		vals = append(vals, n)
	}

	z, err := zipper.FromSeq(zipper.FromSlice(vals))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.z = z
	r.loaded = true
	r.cmdShow()
}

func (r *REPL) cmdShow() {
	if !r.loaded {
		fmt.Println("No sequence loaded. Use 'new' first.")
		return
	}
	// Left context is stored nearest-first; print it in sequence order.
	fmt.Printf("  %v [%d] %v   (offset %d of %d)\n",
		r.z.Left().Reverse().ToSlice(), r.z.Focus(), r.z.Right().ToSlice(),
		r.z.Offset(), r.z.Len())
}

func (r *REPL) cmdMove(dir int) {
	if !r.loaded {
		fmt.Println("No sequence loaded. Use 'new' first.")
		return
	}
	var (
		z   zipper.Zipper[int]
		err error
	)
	if dir < 0 {
		z, err = r.z.MoveLeft()
	} else {
		z, err = r.z.MoveRight()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.z = z
	r.cmdShow()
}

func (r *REPL) cmdRewind() {
	if !r.loaded {
		fmt.Println("No sequence loaded. Use 'new' first.")
		return
	}
	r.z = r.z.Rewind()
	r.cmdShow()
}

func (r *REPL) cmdEnd() {
	if !r.loaded {
		fmt.Println("No sequence loaded. Use 'new' first.")
		return
	}
	r.z = r.z.End()
	r.cmdShow()
}

func (r *REPL) cmdSeek(args []string) {
	if !r.loaded {
		fmt.Println("No sequence loaded. Use 'new' first.")
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: seek <offset>")
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Not an integer: %s\n", args[0])
		return
	}
	z, err := r.z.Seek(i)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.z = z
	r.cmdShow()
}

func (r *REPL) cmdSet(args []string) {
	if !r.loaded {
		fmt.Println("No sequence loaded. Use 'new' first.")
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: set <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Not an integer: %s\n", args[0])
		return
	}
	r.z = r.z.WithFocus(n)
	r.cmdShow()
}

func (r *REPL) cmdAdd(args []string) {
	if !r.loaded {
		fmt.Println("No sequence loaded. Use 'new' first.")
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: add <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Not an integer: %s\n", args[0])
		return
	}
	r.z = r.z.ModifyFocus(func(v int) int { return v + n })
	r.cmdShow()
}

func (r *REPL) cmdInsert(args []string) {
	if !r.loaded {
		fmt.Println("No sequence loaded. Use 'new' first.")
		return
	}
	if len(args) != 2 {
		fmt.Println("Usage: insert left|right <n>")
		return
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("Not an integer: %s\n", args[1])
		return
	}
	switch strings.ToLower(args[0]) {
	case "left":
		r.z = r.z.InsertLeft(n)
	case "right":
		r.z = r.z.InsertRight(n)
	default:
		fmt.Println("Usage: insert left|right <n>")
		return
	}
	r.cmdShow()
}

func (r *REPL) cmdDelete() {
	if !r.loaded {
		fmt.Println("No sequence loaded. Use 'new' first.")
		return
	}
	z, err := r.z.Delete()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.z = z
	r.cmdShow()
}

func (r *REPL) cmdPositions() {
	if !r.loaded {
		fmt.Println("No sequence loaded. Use 'new' first.")
		return
	}
	for p := range r.z.Positions() {
		marker := " "
		if p.Offset() == r.z.Offset() {
			marker = "*"
		}
		fmt.Printf("%s %v [%d] %v\n", marker,
			p.Left().Reverse().ToSlice(), p.Focus(), p.Right().ToSlice())
	}
}

func (r *REPL) cmdPeak() {
	if !r.loaded {
		fmt.Println("No sequence loaded. Use 'new' first.")
		return
	}
	v, err := zipper.Peak(r.z.Seq())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Peak: %d\n", v)
}

func (r *REPL) cmdRaise() {
	if !r.loaded {
		fmt.Println("No sequence loaded. Use 'new' first.")
		return
	}
	s, err := zipper.RaisePeak(r.z.Seq())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Raised: %v\n", s.ToSlice())
}
