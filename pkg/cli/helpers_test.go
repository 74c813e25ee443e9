// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cluster-archive/pkg/serializer"
)

// parseFormatArg resolves the format flag through a real command run, so
// the parse sees the value exactly as an invocation would deliver it.
func parseFormatArg(t *testing.T, args ...string) (serializer.Format, error) {
	t.Helper()

	var (
		got  serializer.Format
		perr error
	)
	stub := &cli.Command{
		Name: "stub",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: string(serializer.FormatYAML)},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			got, perr = parseOutputFormat(c)
			return nil
		},
	}
	if err := stub.Run(context.Background(), append([]string{"stub"}, args...)); err != nil {
		t.Fatalf("stub command failed: %v", err)
	}
	return got, perr
}

func TestParseOutputFormat(t *testing.T) {
	for arg, want := range map[string]serializer.Format{
		"json":  serializer.FormatJSON,
		"yaml":  serializer.FormatYAML,
		"table": serializer.FormatTable,
	} {
		got, err := parseFormatArg(t, "--format", arg)
		if err != nil {
			t.Errorf("parseOutputFormat(%q) error = %v", arg, err)
			continue
		}
		if got != want {
			t.Errorf("parseOutputFormat(%q) = %v, want %v", arg, got, want)
		}
	}
}

func TestParseOutputFormat_DefaultsToYAML(t *testing.T) {
	got, err := parseFormatArg(t)
	if err != nil {
		t.Fatalf("parseOutputFormat() with no flag error = %v", err)
	}
	if got != serializer.FormatYAML {
		t.Errorf("parseOutputFormat() default = %v, want %v", got, serializer.FormatYAML)
	}
}

func TestParseOutputFormat_RejectsUnknown(t *testing.T) {
	for _, arg := range []string{"xml", "csv", "toml", ""} {
		_, err := parseFormatArg(t, "--format", arg)
		if err == nil {
			t.Errorf("parseOutputFormat(%q) expected error, got nil", arg)
			continue
		}
		if !strings.Contains(err.Error(), "supported:") {
			t.Errorf("error should name the supported formats, got: %v", err)
		}
	}
}
