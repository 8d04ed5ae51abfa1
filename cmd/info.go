/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"pathext/bars"
	"pathext/extract"
	"pathext/mimedb"
	"pathext/pathx"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v7"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [path ...]",
	Short: "Show derived metadata for one or more paths.",
	Long: `Resolve the extension of each path against the MIME database and
print its MIME type, classification, size, ownership and permissions.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runInfo(args)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(args []string) {
	for _, arg := range args {
		p := pathx.New(arg)
		if !p.Exists() {
			fmt.Fprintf(os.Stderr, "%s: no such file or directory\n", arg)
			continue
		}
		printInfo(p)
	}
}

func printInfo(p *pathx.Path) {
	fmt.Println(p.String())

	if t, err := p.Type(); err == nil {
		fmt.Printf("  type:        %s\n", t)
	}
	if ext := p.Ext(); ext != "" {
		fmt.Printf("  extension:   %s\n", ext)
	}
	if mt := p.MIME(); mt.Kind != mimedb.None {
		fmt.Printf("  mime:        %s\n", mt)
	}
	if size, err := sizeOf(p); err == nil {
		fmt.Printf("  size:        %s\n", size)
	} else {
		fmt.Fprintf(os.Stderr, "  size:        %s\n", err)
	}
	if owner, err := p.Owner(); err == nil {
		if group, err := p.Group(); err == nil {
			fmt.Printf("  owner:       %s:%s\n", owner, group)
		}
	}
	if perms, err := p.Permissions(); err == nil {
		fmt.Printf("  permissions: %s\n", perms)
	}

	fmt.Printf("  access:      %s\n", accessString(p))

	flags := classify(p)
	if len(flags) > 0 {
		fmt.Printf("  class:       %s\n", joinFlags(flags))
	}
	switch p.Support() {
	case extract.Supported:
		if cmdline, ok := p.DecompressionCommand(); ok {
			fmt.Printf("  unpack:      %s\n", cmdline)
		}
	case extract.Recognized:
		fmt.Printf("  unpack:      recognized format, no handler\n")
	}
}

// sizeOf sizes the path, with a spinner while a directory tree is
// walked.
func sizeOf(p *pathx.Path) (string, error) {
	if !p.IsDir() {
		return p.SizeHuman()
	}
	prog := mpb.New(mpb.WithOutput(os.Stderr))
	b := bars.AddNewScanBar(prog, p.String())
	size, err := p.SizeHuman()
	if err != nil {
		b.Abort(true)
	} else {
		b.SetTotal(1, true)
	}
	prog.Wait()
	return size, err
}

func accessString(p *pathx.Path) string {
	s := [3]byte{'-', '-', '-'}
	if p.IsReadable() {
		s[0] = 'r'
	}
	if p.IsWritable() {
		s[1] = 'w'
	}
	if p.IsExecutable() {
		s[2] = 'x'
	}
	return string(s[:])
}

func classify(p *pathx.Path) []string {
	var flags []string
	checks := []struct {
		name string
		fn   func() (bool, error)
	}{
		{"compressed", p.IsCompressed},
		{"video", p.IsVideo},
		{"audio", p.IsAudio},
		{"font", p.IsFont},
	}
	for _, c := range checks {
		ok, err := c.fn()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", p, err)
			continue
		}
		if ok {
			flags = append(flags, c.name)
		}
	}
	if bin, err := p.IsBinary(); err == nil && !bin && p.IsFile() {
		flags = append(flags, "text")
	}
	return flags
}

func joinFlags(flags []string) string {
	out := ""
	for i, f := range flags {
		if i > 0 {
			out += ", "
		}
		out += f
	}
	return out
}
