/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"pathext/extract"
	"pathext/pathx"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v7"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [path ...]",
	Short: "Unpack archives into a destination directory.",
	Long: `Unpack each archive with a native reader where one exists (gzip,
bzip2, zip), or with the external command configured for its resolved
extension otherwise.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runExtract(args)
	},
}

var (
	destDir string
	dryRun  bool
)

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&destDir, "directory", "C", ".", "Directory to unpack into")
	extractCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the command instead of running it")
	extractCmd.Flags().SortFlags = false
}

func runExtract(args []string) {
	fsys := afero.NewOsFs()
	p := mpb.New()

	for _, arg := range args {
		if err := extractOne(arg, fsys, p); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", arg, err)
		}
	}
	p.Wait()
}

func extractOne(arg string, fsys afero.Fs, p *mpb.Progress) error {
	path := pathx.New(arg)
	compressed, err := path.IsCompressed()
	if err != nil {
		return err
	}
	if !compressed {
		return fmt.Errorf("not a recognized archive")
	}

	if _, err := extract.GetFormat(arg, fsys); err == nil {
		if dryRun {
			fmt.Printf("extract %s into %s\n", arg, destDir)
			return nil
		}
		return extract.Extract(arg, destDir, p, fsys)
	}

	// No native reader claimed the header; fall back to the command
	// configured for the resolved extension. The command runs inside
	// destDir, so the target has to be absolute.
	target, err := filepath.Abs(arg)
	if err != nil {
		return err
	}
	cmdline, ok := extract.Command(path.Ext(), target)
	if !ok {
		return fmt.Errorf("recognized format %s has no handler", path.Ext())
	}
	if dryRun {
		fmt.Println(cmdline)
		return nil
	}

	sh := exec.Command("sh", "-c", cmdline)
	sh.Dir = destDir
	sh.Stdout = os.Stdout
	sh.Stderr = os.Stderr
	return sh.Run()
}
