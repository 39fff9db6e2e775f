// Package p4errgen generates p4java's IServerMessageCode interface from the error-message definitions in the
// Perforce C++ sources (msgs/msgdm.cc), keeping both error-code tables in sync.
//
// The generation is a single pipeline: errorid.Scan extracts the records, errorid.SortByCode orders them,
// and javagen renders them.
package p4errgen

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/p4ic4idea/p4errgen/errorid"
	"github.com/p4ic4idea/p4errgen/javagen"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	// ErrNoOutputDir is returned when the directory of the output file doesn't exist.
	ErrNoOutputDir = errors.New("output directory not found")

	// ErrNoInput is returned when the message source is not found.
	ErrNoInput = errors.New("message source not found")
)

// Result of a generation.
type Result struct {
	InputPath, OutputPath string
	NumRecords            int

	// Changed is true if the generated contents differ from the previous output file (or if there was none).
	Changed bool
}

// Generate reads the message source from r and writes the Java source to w.
// Nothing is written to w if the source can't be parsed. It returns the number of records generated.
func Generate(r io.Reader, w io.Writer, cfg Config) (int, error) {
	opts, err := cfg.EmitterOptions()
	if err != nil {
		return 0, err
	}
	emitter, err := javagen.New(opts)
	if err != nil {
		return 0, err
	}
	records, err := errorid.Scan(r)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to parse message source")
	}
	errorid.SortByCode(records)

	var buf bytes.Buffer
	if err = emitter.Emit(&buf, records); err != nil {
		return 0, err
	}
	if _, err = w.Write(buf.Bytes()); err != nil {
		return 0, errors.Wrap(err, "failed to write generated source")
	}
	return len(records), nil
}

// GenerateFile generates the output file under toolDir from the input file under sourceDir.
// The output file is overwritten.
//
// toolDir may also be a file, in which case its directory is used.
func GenerateFile(toolDir, sourceDir string, cfg Config) (*Result, error) {
	contents, result, err := render(toolDir, sourceDir, cfg)
	if err != nil {
		return nil, err
	}
	if err = os.WriteFile(result.OutputPath, contents, 0644); err != nil {
		return nil, errors.Wrapf(err, "failed to write %q", result.OutputPath)
	}
	klog.V(1).Infof("wrote %d records to %q (changed=%v)", result.NumRecords, result.OutputPath, result.Changed)
	return result, nil
}

// Check generates the output in memory and compares it to the current output file, without writing anything.
// Result.Changed reports whether the output file is stale.
func Check(toolDir, sourceDir string, cfg Config) (*Result, error) {
	_, result, err := render(toolDir, sourceDir, cfg)
	return result, err
}

// ResolveToolDir returns toolPath if it is a directory, or its parent directory otherwise.
func ResolveToolDir(toolPath string) string {
	if fi, err := os.Stat(toolPath); err == nil && !fi.IsDir() {
		return filepath.Dir(toolPath)
	}
	return toolPath
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// render generates the contents of the output file in memory.
func render(toolDir, sourceDir string, cfg Config) (contents []byte, result *Result, err error) {
	result = &Result{
		InputPath:  resolvePath(sourceDir, cfg.Input),
		OutputPath: resolvePath(ResolveToolDir(toolDir), cfg.Output),
	}
	outputDir := filepath.Dir(result.OutputPath)
	if fi, statErr := os.Stat(outputDir); statErr != nil || !fi.IsDir() {
		return nil, nil, errors.Wrapf(ErrNoOutputDir, "%q", outputDir)
	}

	inputPath := result.InputPath
	f, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Wrapf(ErrNoInput, "%q", inputPath)
		}
		return nil, nil, errors.Wrapf(err, "failed to open %q", inputPath)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			klog.Warningf("Failed to close %q: %v", inputPath, closeErr)
		}
	}()

	klog.V(1).Infof("reading %q", inputPath)
	var buf bytes.Buffer
	result.NumRecords, err = Generate(f, &buf, cfg)
	if err != nil {
		return nil, nil, errors.WithMessagef(err, "generating from %q", inputPath)
	}
	contents = buf.Bytes()

	previous, err := os.ReadFile(result.OutputPath)
	switch {
	case err == nil:
		result.Changed = !bytes.Equal(previous, contents)
	case os.IsNotExist(err):
		result.Changed = true
	default:
		return nil, nil, errors.Wrapf(err, "failed to read current %q", result.OutputPath)
	}
	return contents, result, nil
}
