// Command lvbap separates subtour elimination cuts from fractional LP
// solutions and replays recorded branch-and-price trees.
//
// Usage:
//
//	lvbap separate [--mode most-violated] [--max-cuts 10] instance.yaml...
//	lvbap replay [--separate] tree.yaml
//
// Runtime settings come from a TOML file (--config); flags override it.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
