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

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/NVIDIA/cluster-archive/pkg/layout"
)

// Enricher writes kind-specific sidecar files next to an object's raw
// representation. Enrich runs after the raw file exists, so the object
// directory is already in place. Failures to obtain enrichment material
// (logs, data) are not errors; failures to write obtained material are.
type Enricher interface {
	Enrich(ctx context.Context, d *Dumper, id layout.ObjectIdentity, obj *unstructured.Unstructured) error
}

// enrichers maps kinds to their enricher. Kinds without an entry get
// noopEnricher, so adding a kind here is the only step to enable new
// sidecar files.
var enrichers = map[string]Enricher{
	"Pod":       podEnricher{},
	"ConfigMap": dataEnricher{},
	"Secret":    dataEnricher{},
}

func enricherFor(kind string) Enricher {
	if e, ok := enrichers[kind]; ok {
		return e
	}
	return noopEnricher{}
}

type noopEnricher struct{}

func (noopEnricher) Enrich(context.Context, *Dumper, layout.ObjectIdentity, *unstructured.Unstructured) error {
	return nil
}
