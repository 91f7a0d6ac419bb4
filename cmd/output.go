package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// entry is the JSON shape for one resolved file.
type entry struct {
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
}

func write(out io.Writer, root, format string, files []string) error {
	switch format {
	case "table":
		return writeTable(out, root, files)
	case "json":
		return writeJSON(out, root, files)
	case "path", "":
		for _, f := range files {
			if _, err := fmt.Fprintln(out, f); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeTable(out io.Writer, root string, files []string) error {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Path", "Size"})
	for _, f := range files {
		var size int64
		if info, err := os.Stat(filepath.Join(root, filepath.FromSlash(f))); err == nil {
			size = info.Size()
		}
		t.AppendRow(table.Row{f, size})
	}
	t.Render()
	return nil
}

// writeJSON streams a JSON array of entries.
func writeJSON(out io.Writer, root string, files []string) error {
	if _, err := io.WriteString(out, "["); err != nil {
		return err
	}
	first := true
	enc := json.NewEncoder(out)
	for _, f := range files {
		if !first {
			if _, err := io.WriteString(out, ","); err != nil {
				return err
			}
		}
		first = false
		e := entry{Path: f}
		if info, err := os.Stat(filepath.Join(root, filepath.FromSlash(f))); err == nil {
			e.Size = info.Size()
			e.ModTime = info.ModTime()
		}
		// enc.Encode adds a newline; that's fine for streaming
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	_, err := io.WriteString(out, "]")
	return err
}
