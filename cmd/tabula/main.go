// Command tabula loads a typed column from CSV, JSONL or SQLite and prints,
// transforms, summarises or rolls it.
package main

import "github.com/mesh-intelligence/tabula/internal/cli"

func main() {
	cli.Execute()
}
