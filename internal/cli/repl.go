package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Search(ctx context.Context, query string) error
	SortList(ctx context.Context, key string) error
	Check(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the shelfwatch shell.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on reader EOF or when the user types
// "exit" or "quit".
//
// The reader must be the same buffered reader the command handlers use for
// their prompts; a second buffered reader on the same descriptor would read
// ahead and starve the prompts when input is piped.
//
// Commands:
//
//	add              — create a new item (interactive prompts)
//	list | l         — show all items
//	edit             — change an item's name/expiry by id
//	delete | del     — remove an item by id
//	search <text>    — show items whose fields contain <text>
//	sort name|expiry — show all items ordered by the given column
//	check            — run an expiry sweep right now
//	help             — show available commands
//	exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
// When interactive is false (stdin is piped), the prompt is suppressed.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, interactive bool) {
	for {
		if interactive {
			printlnFn("shelfwatch> ")
		}
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: add, (l)ist, edit, delete, search <text>, sort name|expiry, check, exit")

		case "a", "add":
			_ = a.Add(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "del", "delete":
			_ = a.Delete(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(parts[1:], " "))

		case "sort":
			key := "name"
			if len(parts) > 1 {
				key = parts[1]
			}
			_ = a.SortList(ctx, key)

		case "check":
			_ = a.Check(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
