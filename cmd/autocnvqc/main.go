// autocnvqc aggregates CNV and coverage QC metrics across the sequencing
// runs matching a platform, date prefix, and assay panel, and compiles
// per-run summaries, aggregate run statistics, and a clinical-vs-all
// comparison report with diagnostic plots.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/genomelab/autocnvqc/cnv"
	"github.com/genomelab/autocnvqc/coverage"
	"github.com/genomelab/autocnvqc/report"
	"github.com/genomelab/autocnvqc/runs"
)

var platforms = map[string]bool{"Nextseq": true, "Novaseq": true}

func main() {
	var platform, date, panel, outdir, root string

	flag.StringVar(&platform, "platform", "", "Sequencing platform (Nextseq or Novaseq)")
	flag.StringVar(&date, "date", "", "Date prefix for runs, e.g. 2205")
	flag.StringVar(&panel, "panel", "", "Assay panel (Exome, Neuropathy, or LynchHRD)")
	flag.StringVar(&outdir, "outdir", ".", "Path to the output directory. (Optional.)")
	flag.StringVar(&root, "root", runs.DefaultLayout.Root, "Root of the per-platform run directory tree. (Optional.)")

	flag.Parse()

	if !platforms[platform] {
		fmt.Fprintln(os.Stderr, "Please provide -platform (Nextseq or Novaseq)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if date == "" {
		fmt.Fprintln(os.Stderr, "Please provide -date")
		flag.PrintDefaults()
		os.Exit(1)
	}

	layout := runs.DefaultLayout
	layout.Root = root
	if _, ok := layout.PanelPaths[panel]; !ok {
		fmt.Fprintln(os.Stderr, "Please provide -panel (Exome, Neuropathy, or LynchHRD)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(layout, platform, date, panel, outdir); err != nil {
		log.Fatalln(err)
	}
}

func run(layout runs.Layout, platform, date, panel, outdir string) error {
	outdir = filepath.Join(outdir, platform+"_"+date+"_"+panel)
	if err := os.MkdirAll(outdir, 0755); err != nil {
		// Not fatal here; any real problem resurfaces at file-write time.
		log.Println("ERROR: unable to create output directory", outdir, ":", err)
	}

	runIDs, err := layout.SelectRuns(platform, date, panel)
	if err != nil {
		return err
	}

	if len(runIDs) == 0 {
		fmt.Println("No runs to process. Exiting!")
		os.Exit(0)
	}
	log.Println("Processing", len(runIDs), "runs")

	cnvTable, err := cnv.ExtractAll(layout, runIDs, platform, panel, outdir)
	if err != nil {
		return err
	}

	covTable, err := coverage.ExtractAll(layout, runIDs, platform, panel, outdir)
	if err != nil {
		return err
	}

	merged := report.Merge(cnvTable, covTable)
	log.Println("Merged", len(merged), "samples across", len(runIDs), "runs")

	return report.Compile(outdir, platform, date, panel, merged)
}
