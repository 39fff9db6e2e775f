// p4errgen generates p4java's IServerMessageCode.java from the Perforce C++ message definitions (msgs/msgdm.cc).
//
// Usage:
//
//	p4errgen [flags] <tool-dir> <source-dir>
//
// <tool-dir> is the p4java project directory (or a file in it): the output is written to
// src/main/java/com/perforce/p4java/server/IServerMessageCode.java under it. <source-dir> is the root of the
// Perforce C++ sources.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/janpfeifer/gonb/common"
	"github.com/p4ic4idea/p4errgen"
	"github.com/p4ic4idea/p4errgen/javagen"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Exit codes.
const (
	exitUsage   = 1
	exitNoInput = 2
	exitStale   = 3
)

var (
	flagConfig = flag.String("config", "",
		"TOML file with generation options (input, output, package, interface, import_package, generator, "+
			"naming, escape_text and a [symbols] table). Defaults generate p4java's IServerMessageCode.")
	flagNaming = flag.String("naming", "",
		fmt.Sprintf("Naming style of the Java constants, one of %s. If set, it overrides the configuration. "+
			"Use \"legacy\" to reproduce the names already published by p4java.",
			strings.Join(javagen.NamingStyleStrings(), ", ")))
	flagEscapeText = flag.Bool("escape_text", false,
		"Escape \"*/\" in message texts so they can't close the Javadoc comment. By default texts are verbatim.")
	flagCheck = flag.Bool("check", false,
		fmt.Sprintf("Don't write anything: exit with status %d if the output file is not up-to-date.", exitStale))
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	okColor    = color.New(color.FgGreen)
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `p4errgen generates p4java's IServerMessageCode.java from the Perforce C++ message definitions.

$ p4errgen [flags] <tool-dir> <source-dir>

<tool-dir> is the p4java project directory (or a file in it), under which the output is written to
%s. <source-dir> is the root of the Perforce C++ sources, where %s is read from.

Flags:
`, p4errgen.DefaultOutput, p4errgen.DefaultInput)
		flag.PrintDefaults()
	}
	klog.InitFlags(nil)
	flag.Parse()

	toolDir, sourceDir, exitCode := positionalArgs(flag.Args(), os.Stderr)
	if exitCode != 0 {
		fmt.Fprintln(os.Stderr)
		flag.Usage()
		klog.Flush()
		os.Exit(exitCode)
	}

	cfg, err := loadConfig()
	if err != nil {
		failf(exitUsage, "%v\n", err)
	}

	exitCode, err = generate(toolDir, sourceDir, cfg, *flagCheck, os.Stdout, os.Stderr)
	if err != nil {
		klog.Fatalf("Failed to generate %s: %+v", cfg.Interface, err)
	}
	klog.Flush()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// positionalArgs returns the tool and source directories, with "~" expanded.
// If they are not both given, it reports it to stderr and returns exitUsage.
func positionalArgs(args []string, stderr io.Writer) (toolDir, sourceDir string, exitCode int) {
	if len(args) < 2 || args[0] == "" || args[1] == "" {
		_, _ = errorColor.Fprintln(stderr, "Both the tool directory and the Perforce source directory must be given.")
		return "", "", exitUsage
	}
	if len(args) > 2 {
		klog.Warningf("Ignoring extra arguments %q", args[2:])
	}
	return common.ReplaceTildeInDir(args[0]), common.ReplaceTildeInDir(args[1]), 0
}

// generate writes (or checks, if check is set) the output file and returns the exit code.
//
// Missing directories or input are reported to stderr with the corresponding exit code. Any other error
// is returned.
func generate(toolDir, sourceDir string, cfg p4errgen.Config, check bool, stdout, stderr io.Writer) (int, error) {
	var result *p4errgen.Result
	var err error
	if check {
		result, err = p4errgen.Check(toolDir, sourceDir, cfg)
	} else {
		result, err = p4errgen.GenerateFile(toolDir, sourceDir, cfg)
	}
	switch {
	case errors.Is(err, p4errgen.ErrNoOutputDir):
		_, _ = errorColor.Fprintf(stderr, "Output directory not found (%v): is %q the p4java project directory?\n",
			err, toolDir)
		return exitUsage, nil
	case errors.Is(err, p4errgen.ErrNoInput):
		_, _ = errorColor.Fprintf(stderr, "Message source not found: %v\n", err)
		return exitNoInput, nil
	case err != nil:
		return 0, err
	}

	if check {
		if result.Changed {
			_, _ = errorColor.Fprintf(stderr, "%s is not up-to-date with %s: run p4errgen to regenerate it.\n",
				result.OutputPath, result.InputPath)
			return exitStale, nil
		}
		_, _ = okColor.Fprintf(stdout, "%s is up-to-date (%d messages).\n", result.OutputPath, result.NumRecords)
		return 0, nil
	}
	state := "unchanged"
	if result.Changed {
		state = "updated"
	}
	_, _ = okColor.Fprintf(stdout, "Generated %s from %s: %d messages, %s.\n",
		result.OutputPath, result.InputPath, result.NumRecords, state)
	return 0, nil
}

// loadConfig reads the configuration file, if given, and applies the flags overriding it.
func loadConfig() (p4errgen.Config, error) {
	cfg := p4errgen.DefaultConfig()
	if *flagConfig != "" {
		var err error
		cfg, err = p4errgen.LoadConfig(common.ReplaceTildeInDir(*flagConfig))
		if err != nil {
			return cfg, err
		}
	}
	if *flagNaming != "" {
		naming, err := javagen.NamingStyleString(*flagNaming)
		if err != nil {
			return cfg, errors.Wrapf(err, "invalid value for -naming")
		}
		cfg.Naming = naming
	}
	if *flagEscapeText {
		cfg.EscapeText = true
	}
	klog.V(1).Infof("configuration: %+v", cfg)
	return cfg, nil
}

// failf prints the message to stderr and exits with the given code.
func failf(exitCode int, format string, args ...any) {
	_, _ = errorColor.Fprintf(os.Stderr, format, args...)
	klog.Flush()
	os.Exit(exitCode)
}
