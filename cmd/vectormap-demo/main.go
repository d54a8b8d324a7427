// Command vectormap-demo walks through the vectormap containers with int,
// string and bool keys and prints what each operation does.
//
// Usage:
//
//	vectormap-demo [--scenario=all|ints|strings|bools|intkey] [--json] [--log-level=info]
package main

import "os"

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}
