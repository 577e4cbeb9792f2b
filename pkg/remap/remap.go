package remap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/keyremap/internal/keymap"
	"github.com/joshuapare/keyremap/internal/logger"
	"github.com/joshuapare/keyremap/internal/rewrite"
	"github.com/joshuapare/keyremap/internal/rules"
	"github.com/joshuapare/keyremap/pkg/types"
)

// KeymapExt is the suffix of files processed by RemapDir.
const KeymapExt = ".xml"

// RewriteShortcut rewrites one keystroke string with rule.
//
// Example:
//
//	out, _ := remap.RewriteShortcut("meta control EQUALS", rule)
//	// out == "meta control shift SEMICOLON" for {SEMICOLON, "shift"}
func RewriteShortcut(shortcut string, rule Rule) (string, error) {
	return rewrite.Rewrite(shortcut, rule)
}

// LoadRules reads a JSON, YAML or TOML replacement config.
func LoadRules(path string) (*Table, error) {
	return rules.LoadFile(path)
}

// BuildRules validates specs into a table. Later specs override earlier
// ones with the same key.
func BuildRules(specs []RuleSpec) (*Table, error) {
	return rules.Build(specs)
}

// FileResult reports the outcome for one keymap.
type FileResult struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Written bool   `json:"written"`
	Stats
}

// RemapFile rewrites the keymap at keymapPath and writes it to outputPath.
// Nothing is written when the update fails or opts.DryRun is set.
func RemapFile(keymapPath, outputPath string, table *Table, opts *Options) (*FileResult, error) {
	if opts == nil {
		opts = &Options{}
	}

	logger.Info("parsing keymap", "path", keymapPath)
	doc, err := keymap.Load(keymapPath)
	if err != nil {
		return nil, err
	}

	var onChange func(Change)
	if opts.OnChange != nil {
		onChange = func(c Change) { opts.OnChange(keymapPath, c) }
	}

	stats, err := rewrite.Keymap(doc, table, onChange)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keymapPath, err)
	}

	res := &FileResult{Input: keymapPath, Output: outputPath, Stats: stats}
	if opts.DryRun {
		logger.Info("dry run, keymap not written", "path", outputPath, "updated", stats.Updated)
		return res, nil
	}

	logger.Info("writing updated keymap", "path", outputPath)
	if err := doc.Save(outputPath); err != nil {
		return nil, fmt.Errorf("%s: %w", outputPath, err)
	}
	res.Written = true
	return res, nil
}

// FileError records a keymap that could not be processed.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *FileError) Unwrap() error { return e.Err }

// MarshalJSON emits the path, message and error kind.
func (e *FileError) MarshalJSON() ([]byte, error) {
	out := struct {
		Path  string `json:"path"`
		Error string `json:"error"`
		Kind  string `json:"kind,omitempty"`
	}{Path: e.Path, Error: e.Err.Error()}
	if kind, ok := types.KindOf(e.Err); ok {
		out.Kind = kind.String()
	}
	return json.Marshal(out)
}

// DirResult reports the outcome for a directory.
type DirResult struct {
	Files   []FileResult `json:"files"`
	Failed  []*FileError `json:"failed,omitempty"`
	Skipped []string     `json:"skipped,omitempty"`
}

// Updated returns the number of updated shortcuts across all files.
func (r *DirResult) Updated() int {
	n := 0
	for _, f := range r.Files {
		n += f.Updated
	}
	return n
}

// RemapDir rewrites every *.xml file directly inside inputDir and writes the
// results to outputDir under the same names. Other files and subdirectories
// are skipped. outputDir is created when missing; if it exists and is not a
// directory RemapDir fails before touching any file.
//
// Files are processed one at a time in name order. The returned result holds
// the files completed so far even when an error is returned.
func RemapDir(inputDir, outputDir string, table *Table, opts *Options) (*DirResult, error) {
	if opts == nil {
		opts = &Options{}
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("reading keymap directory: %w", err)
	}

	if err := prepareOutputDir(outputDir, opts.DryRun); err != nil {
		return nil, err
	}

	res := &DirResult{}
	var keymaps []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), KeymapExt) || !isRegularFile(filepath.Join(inputDir, e.Name())) {
			logger.Debug("skipping entry", "path", filepath.Join(inputDir, e.Name()))
			res.Skipped = append(res.Skipped, e.Name())
			continue
		}
		keymaps = append(keymaps, e.Name())
	}

	for i, name := range keymaps {
		in := filepath.Join(inputDir, name)
		out := filepath.Join(outputDir, name)

		fr, err := RemapFile(in, out, table, opts)
		if err != nil {
			if !opts.ContinueOnError {
				return res, err
			}
			logger.Warn("keymap failed", "path", in, "error", err)
			res.Failed = append(res.Failed, &FileError{Path: in, Err: err})
		} else {
			res.Files = append(res.Files, *fr)
		}

		if opts.OnProgress != nil {
			opts.OnProgress(i+1, len(keymaps))
		}
	}

	logger.Info("directory processed",
		"input", inputDir, "output", outputDir,
		"files", len(res.Files), "failed", len(res.Failed), "updated", res.Updated())
	return res, nil
}

// isRegularFile reports whether path, after following symlinks, is a regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// prepareOutputDir checks that path is a directory, creating it if missing.
func prepareOutputDir(path string, dryRun bool) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("output %s: %w", path, types.ErrNotDirectory)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if dryRun {
			return nil
		}
		logger.Info("creating output directory", "path", path)
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("output %s: %w", path, err)
	}
}
