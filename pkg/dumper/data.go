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

package dumper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/NVIDIA/cluster-archive/pkg/defaults"
	"github.com/NVIDIA/cluster-archive/pkg/layout"
)

// dataEnricher writes each data entry of a ConfigMap or Secret to its own
// file, byte for byte as the API returned it. Secret values stay base64
// encoded; the archive never holds more than the API response did.
type dataEnricher struct{}

func (dataEnricher) Enrich(_ context.Context, d *Dumper, id layout.ObjectIdentity, obj *unstructured.Unstructured) error {
	for _, field := range []string{"data", "binaryData"} {
		values, found, err := unstructured.NestedStringMap(obj.Object, field)
		if err != nil {
			slog.Warn("data field not readable, skipping",
				"object", id.String(), "field", field, "error", err)
			continue
		}
		if !found {
			continue
		}

		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			path := d.Layout.DataPath(id, key)
			if err := os.WriteFile(path, []byte(values[key]), defaults.FileMode); err != nil {
				return fmt.Errorf("failed to write data entry %q for %s: %w", key, id, err)
			}
			d.sum.DataFiles++
		}
	}
	return nil
}
