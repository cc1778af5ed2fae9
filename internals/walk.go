package internals

import (
	"os"
	"path/filepath"
)

// This module implements the path collection logic. The collector runs
// to completion before any file is hashed; it expands the user-supplied
// paths into a flat list of regular files and reports everything else.

// CollectFiles expands the user-supplied input paths into an ordered
// list of regular file paths. A file input is included as-is. A
// directory input contributes every regular file reachable below it.
// Inputs which exist as neither (or not at all) are returned in invalid;
// collection continues with the remaining inputs.
//
// Files under input N precede files under input N+1. Within one
// directory input the descent is breadth-first in os.ReadDir name
// order, so the result is deterministic per run.
func CollectFiles(inputs []string, log Console) (files []string, invalid []string) {
	files = make([]string, 0, len(inputs))
	invalid = make([]string, 0)
	for _, input := range inputs {
		info, err := os.Stat(input)
		switch {
		case err != nil:
			invalid = append(invalid, input)
		case info.Mode().IsRegular():
			files = append(files, input)
		case info.IsDir():
			files = append(files, filesBelow(input, log)...)
		default:
			// sockets, FIFOs, device files
			invalid = append(invalid, input)
		}
	}
	return files, invalid
}

// filesBelow returns all regular files below root. The descent uses an
// explicit queue instead of call recursion, so arbitrarily deep trees
// cannot exhaust the stack.
//
// Symbolic links to regular files are included. Symbolically linked
// directories are not descended into; following them could loop forever
// on link cycles.
func filesBelow(root string, log Console) []string {
	files := make([]string, 0, 64)
	queue := []string{root}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Errorfln(`cannot read directory %s: %s`, dir, err)
			continue
		}
		for _, entry := range entries {
			sub := filepath.Join(dir, entry.Name())
			switch {
			case entry.IsDir():
				queue = append(queue, sub)
			case entry.Type()&os.ModeSymlink != 0:
				target, err := os.Stat(sub)
				if err == nil && target.Mode().IsRegular() {
					files = append(files, sub)
				}
			case entry.Type().IsRegular():
				files = append(files, sub)
			}
			// everything else (FIFOs, sockets, devices) is skipped
		}
	}
	return files
}
