// Command tsp2opt solves Euclidean travelling-salesman instances with a
// nearest-neighbor construction refined by 2-opt.
//
// Usage:
//
//	tsp2opt solve [file]          solve one instance (file, pipe or prompt)
//	tsp2opt batch files...        solve many instances concurrently
//	tsp2opt history [--limit N]   list archived runs
//	tsp2opt show <id>             re-print an archived run
//	tsp2opt delete <id>           remove an archived run
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
