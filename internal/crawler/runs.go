package crawler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// RunResult captures the outcome of one simulation run for the console summary.
type RunResult struct {
	Name   string
	Record Record
	Error  string
}

// listRunDirs returns the entries of dir that are not regular files, in
// os.ReadDir order. Symlinks are followed; entries that cannot be resolved are
// kept so that reading their abstract file reports the problem.
func listRunDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir %s: %w", dir, err)
	}

	runs := make([]string, 0, len(entries))
	for _, entry := range entries {
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err == nil && info.Mode().IsRegular() {
			continue
		}
		runs = append(runs, entry.Name())
	}
	return runs, nil
}

func (c *crawler) processRun(inputDir, name string, report io.Writer) (RunResult, error) {
	res := RunResult{Name: name}

	rec, err := readRecord(filepath.Join(inputDir, name), name)
	if err != nil {
		res.Record = rec
		res.Error = err.Error()
		c.runErrorf(name, "%v", err)
		return res, err
	}
	res.Record = rec

	if _, err := io.WriteString(report, rec.Block()); err != nil {
		err = fmt.Errorf("%s: write report block: %w", name, err)
		res.Error = err.Error()
		c.runErrorf(name, "%v", err)
		return res, err
	}

	c.logger.Debug("run recorded",
		"run", name,
		"nmax", *rec.Nmax,
		"n_genes", *rec.NGenes,
		"tdiv", *rec.TDiv,
		"dt", *rec.DT,
	)
	c.runInfof(name, "Nmax=%d tdiv=%d dt=%s genes=%d", *rec.Nmax, *rec.TDiv, formatFloat(*rec.DT), *rec.NGenes)
	return res, nil
}

// readRecord parses and validates the abstract file inside runDir.
func readRecord(runDir, name string) (Record, error) {
	path := filepath.Join(runDir, AbstractFileName)
	f, err := os.Open(path)
	if err != nil {
		return Record{Name: name}, fmt.Errorf("%s: open abstract: %w", name, err)
	}
	defer f.Close()

	values, err := ParseAbstract(f, recognizedKeys)
	if err != nil {
		return Record{Name: name}, fmt.Errorf("%s: parse %s: %w", name, AbstractFileName, err)
	}

	rec, err := NewRecord(name, values)
	if err != nil {
		return rec, err
	}
	if err := rec.Validate(); err != nil {
		return rec, err
	}
	return rec, nil
}
