package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/uiabridge/stubgen/internal/cli"
	"github.com/uiabridge/stubgen/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		manifestFlag = flag.String("manifest", "", "YAML manifest listing input/output file pairs")
		helpersFlag  = flag.String("helpers", "", "Override the bundled helper library with a file")
		verboseFlag  = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag    = flag.Bool("quiet", false, "Only show errors")
		cleanFlag    = flag.Bool("clean", false, "Delete previously generated output files")
		helpFlag     = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <input=output...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "stubgen - native-bridge wrapper generator\n")
		fmt.Fprintf(os.Stderr, "Reads interface-description files and generates JavaScript wrapper modules\n")
		fmt.Fprintf(os.Stderr, "whose methods validate their arguments and return invocation descriptors.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  input=output       One or more file pairs, processed in order\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s idl/UIAElement.idl=lib/uia_element.js\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -manifest gen.yaml                     # Pairs from a manifest\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -clean -manifest gen.yaml              # Remove generated outputs\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -verbose idl/UIATarget.idl=lib/uia_target.js\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	reporter := cli.NewDiagnosticReporter(*verboseFlag)

	diagnostics.Section("stubgen")

	// Collect file pairs from the manifest or positional arguments
	var (
		pairs       []cli.FilePair
		helpersPath = *helpersFlag
	)
	if *manifestFlag != "" {
		if len(flag.Args()) > 0 {
			fmt.Fprintf(os.Stderr, "Error: -manifest and positional pairs are mutually exclusive\n\n")
			flag.Usage()
			os.Exit(1)
		}
		manifest, err := cli.LoadManifest(*manifestFlag)
		if err != nil {
			reporter.ReportError(err)
			os.Exit(1)
		}
		pairs = manifest.Pairs
		if helpersPath == "" {
			helpersPath = manifest.Helpers
		}
	} else {
		if len(flag.Args()) == 0 {
			fmt.Fprintf(os.Stderr, "Error: at least one input=output pair is required\n\n")
			flag.Usage()
			os.Exit(1)
		}
		var err error
		pairs, err = cli.ParsePairArgs(flag.Args())
		if err != nil {
			reporter.ReportError(err)
			os.Exit(1)
		}
	}

	// Handle clean operation
	if *cleanFlag {
		cleaner := cli.NewCleaner(diagnostics)
		if err := cleaner.CleanGeneratedFiles(pairs); err != nil {
			reporter.ReportError(err)
			os.Exit(1)
		}
		diagnostics.Success("All generated output files have been removed")
		return
	}

	// Run the generation process
	gen := cli.NewGenerator(diagnostics)
	err := gen.Run(cli.Config{
		Pairs:       pairs,
		HelpersPath: helpersPath,
	})
	if err != nil {
		reporter.ReportError(err)
		os.Exit(1)
	}

	// Show final summary
	summary := gen.GetSummary()
	diagnostics.Summary("Summary", []utils.SummaryStat{
		{Name: "Classes generated", Value: summary.ClassesGenerated},
		{Name: "Methods generated", Value: summary.MethodsGenerated},
		{Name: "Unvalidated arguments", Value: summary.UnknownTypes},
		{Name: "Files written", Value: len(summary.GeneratedFiles)},
	})

	if *verboseFlag && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}

	diagnostics.GenerationComplete()
}
