package cmd

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
permalink: /
---
`

const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"posub": {
		title: "posub",
	},
	"posub_codons": {
		title:    "codons",
		navOrder: 1,
		parent:   "posub",
	},
}

// docsCmd regenerates the Markdown documentation for the command tree
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for posub",
	Hidden: true,
	Args:   cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := os.MkdirAll("./docs", 0755); err != nil {
			log.Fatalf("%v", err)
		}
		if err := doc.GenMarkdownTreeCustom(RootCmd, "./docs", filePrepender, linkHandler); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := metaMap[base]

	if m.parent == "" {
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	}
	return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "posub" {
		return "/"
	}
	return base
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
