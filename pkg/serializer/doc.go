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

// Package serializer renders run results as JSON, YAML, or a plain table.
//
// The dump and version commands each produce one value (the run summary,
// the build info); this package turns that value into the representation
// the --format flag selected and puts it where --output points, stdout by
// default.
//
// # Formats
//
// JSON and YAML are indented encodings of the value as-is. Table flattens
// nested fields into sorted dotted paths and prints aligned FIELD/VALUE
// rows for terminal reading; it cannot be parsed back.
//
//	FIELD              VALUE
//	-----              -----
//	Cluster.Platform   linux/amd64
//	Cluster.Version    1.33.5
//	ObjectsDumped      412
//	TypesFailed        0
//
// # Construction and fallbacks
//
// NewFileWriterOrStdout never fails: a blank path means stdout, and a
// path that cannot be created logs the error and degrades to stdout, so
// the result of a long dump is not lost over an unwritable file. An
// unknown format degrades to JSON the same way. Writers backed by a file
// implement Closer and must be closed.
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "summary.json")
//	if c, ok := w.(serializer.Closer); ok {
//	    defer c.Close()
//	}
//	if err := w.Serialize(ctx, summary); err != nil {
//	    return err
//	}
package serializer
