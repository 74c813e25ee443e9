package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/cluster-archive/pkg/defaults"
)

// scalarKey labels a bare scalar in table output, where there is no
// field name to flatten into.
const scalarKey = "value"

// Writer serializes values to one destination in one format.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter returns a Writer for the given format and destination.
// A nil output writes to stdout; an unknown format is logged and
// treated as JSON so a bad flag value still produces usable output.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &Writer{format: format, output: output}
}

// NewStdoutWriter returns a Writer for the given format on stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout returns a Serializer writing to the file at path,
// created fresh. A blank path selects stdout; a path that cannot be
// created is logged and falls back to stdout, so the caller's output is
// never silently lost. Close the result through the Closer interface
// when writing to a file.
func NewFileWriterOrStdout(format Format, path string) Serializer {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewStdoutWriter(format)
	}

	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create output file, falling back to stdout",
			"error", err,
			"path", path)
		return NewStdoutWriter(format)
	}

	w := NewWriter(format, file)
	w.closer = file
	return w
}

// Close releases the underlying file when there is one. Safe to call
// more than once and on stdout-backed writers.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

// Serialize writes v in the Writer's format. The context is accepted for
// interface compatibility; local writes do not block on it.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w.output)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return nil
	case FormatTable:
		return w.writeTable(v)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

// writeTable renders v as a sorted two-column table of dotted field
// paths and their values.
func (w *Writer) writeTable(v any) error {
	fields := map[string]any{}
	flattenInto(fields, "", reflect.ValueOf(v))
	if len(fields) == 0 {
		fmt.Fprintln(w.output, "<empty>")
		return nil
	}

	paths := make([]string, 0, len(fields))
	for p := range fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, p := range paths {
		fmt.Fprintf(tw, "%s\t%v\n", p, fields[p])
	}
	return tw.Flush()
}

// flattenInto walks v and records every scalar leaf under its dotted
// path. Struct fields use their Go names, map entries their keys, and
// slice elements a bracketed index. Nil pointers and interfaces become
// a nil leaf at their own path.
func flattenInto(out map[string]any, path string, v reflect.Value) {
	if !v.IsValid() {
		return
	}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			if path != "" {
				out[path] = nil
			}
			return
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				flattenInto(out, extendPath(path, f.Name), v.Field(i))
			}
		}
	case reflect.Map:
		for _, k := range v.MapKeys() {
			flattenInto(out, extendPath(path, fmt.Sprintf("%v", k.Interface())), v.MapIndex(k))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			flattenInto(out, extendPath(path, fmt.Sprintf("[%d]", i)), v.Index(i))
		}
	default:
		if path == "" {
			path = scalarKey
		}
		out[path] = v.Interface()
	}
}

func extendPath(path, segment string) string {
	if path == "" {
		return segment
	}
	if segment == "" {
		return path
	}
	return path + "." + segment
}

// WriteToFile writes raw bytes to path with the archive file mode,
// replacing any existing file.
func WriteToFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, defaults.FileMode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
