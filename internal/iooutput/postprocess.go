package iooutput

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"
)

// maxLine is the longest line accepted when files are sorted.
const maxLine = 1024 * 1024

// SortUnique rewrites every file as its unique lines in byte-wise
// lexicographic order. Up to jobsNum files are processed concurrently.
// A file is replaced only after its sorted copy is written completely.
func SortUnique(ctx context.Context, paths []string, jobsNum int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobsNum, 1))

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines, err := sortFile(path)
			if err != nil {
				return SortError(path, err)
			}
			slog.Debug("Sorted output file", "path", path, "lines", lines)
			return nil
		})
	}

	return g.Wait()
}

func sortFile(path string) (int, error) {
	lines, err := readLines(path)
	if err != nil {
		return 0, err
	}
	slices.Sort(lines)
	lines = slices.Compact(lines)

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, l := range lines {
		w.WriteString(l)
		w.WriteByte('\n')
	}
	err = w.Flush()
	if errC := tmp.Close(); err == nil {
		err = errC
	}
	if err != nil {
		return 0, err
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return 0, err
	}
	return len(lines), nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var res []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		res = append(res, sc.Text())
	}
	return res, sc.Err()
}

// DeleteEmpty removes files of zero size and returns paths of the
// deleted files. Missing files are ignored.
func DeleteEmpty(paths []string) ([]string, error) {
	var res []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return res, DeleteError(path, err)
		}
		if info.Size() > 0 {
			continue
		}
		if err = os.Remove(path); err != nil {
			return res, DeleteError(path, err)
		}
		res = append(res, path)
	}
	return res, nil
}
