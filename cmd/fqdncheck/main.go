// Command fqdncheck validates and normalizes domain names from its
// arguments or, with no arguments, from stdin (one name per line).
//
// The exit status is 0 when every name parsed, 1 otherwise, so it doubles
// as a batch validator:
//
//	fqdncheck -strict -wire example.com GitHub.COM.
//	cat names.txt | fqdncheck -quiet
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/jroosing/fqdn"
)

func main() {
	var (
		strict  = flag.Bool("strict", false, "Validate under the full RFC rule bundle")
		wire    = flag.Bool("wire", false, "Also print the wire-format encoding as hex")
		unicode = flag.Bool("unicode", false, "Also print the decoded internationalized form")
		quiet   = flag.Bool("quiet", false, "Suppress output (exit status indicates success)")
	)
	flag.Parse()

	rules := fqdn.Default
	if *strict {
		rules = fqdn.Strict
	}

	names := flag.Args()
	if len(names) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				names = append(names, line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "fqdncheck: reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	failed := false
	for _, raw := range names {
		name, err := rules.Parse(raw)
		if err != nil {
			failed = true
			if !*quiet {
				fmt.Fprintf(os.Stderr, "fqdncheck: %s: %v\n", raw, err)
			}
			continue
		}
		if *quiet {
			continue
		}

		line := name.StringWithRules(rules)
		if *unicode {
			if u, err := name.Unicode(); err == nil {
				line += "\t" + u
			}
		}
		if *wire {
			line += "\t" + hex.EncodeToString(name.Bytes())
		}
		fmt.Println(line)
	}

	if failed {
		os.Exit(1)
	}
}
