// Package config loads the lvbap runtime configuration from TOML.
//
// Load and Parse decode over Default(), reject keys that Config does not
// define, and validate field constraints with go-playground/validator:
//
//	workers = 8
//
//	[log]
//	level  = "debug"   # trace|debug|info|warn|error
//	format = "json"    # text|json
//
//	[separation]
//	algorithm = "push-relabel"   # dinic|edmonds-karp|ford-fulkerson|push-relabel
//	mode      = "most-violated"  # single|subtours|most-violated
//	max_cuts  = 25
//
//	[metrics]
//	textfile = "/var/lib/node_exporter/lvbap.prom"
package config
