// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fralalonde/strictyaml"
)

func runLoad(cmd *cobra.Command, args []string) error {
	var (
		in   *os.File
		name string
		err  error
	)
	if len(args) == 1 {
		name = args[0]
		in, err = os.Open(name)
		if err != nil {
			return fmt.Errorf("opening %s: %w", name, err)
		}
		defer in.Close()
	} else {
		name = "stdin"
		in = os.Stdin
	}

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithField("source", name).Debug("loading document stream")

	docs, warnings, err := strictyaml.LoadWithWarnings(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	for _, w := range warnings {
		log.Warn(w.String())
	}

	for i, doc := range docs {
		if len(docs) > 1 {
			fmt.Printf("--- # document %d\n", i)
		}
		if reprDump {
			repr.Println(doc)
			continue
		}
		printNode(doc, 0)
	}
	return nil
}

func printNode(n *strictyaml.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch n.Kind() {
	case strictyaml.KindString:
		fmt.Printf("%s%s\n", indent, n.IntoString())
	case strictyaml.KindArray:
		n.Each(func(v *strictyaml.Node) bool {
			fmt.Printf("%s-\n", indent)
			printNode(v, depth+1)
			return true
		})
	case strictyaml.KindHash:
		h := n.IntoHash()
		h.Each(func(k, v *strictyaml.Node) bool {
			fmt.Printf("%s%s:\n", indent, k.IntoString())
			printNode(v, depth+1)
			return true
		})
	default:
		fmt.Printf("%s<absent>\n", indent)
	}
}
