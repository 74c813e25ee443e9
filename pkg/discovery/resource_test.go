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

package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

func TestAPIResource_GroupVersion(t *testing.T) {
	tests := []struct {
		name string
		res  APIResource
		want string
		core bool
	}{
		{
			name: "grouped",
			res:  APIResource{Group: "apps", Version: "v1", Kind: "Deployment", Plural: "deployments"},
			want: "apps/v1",
		},
		{
			name: "core",
			res:  APIResource{Group: "", Version: "v1", Kind: "Pod", Plural: "pods"},
			want: "v1",
			core: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.GroupVersion())
			assert.Equal(t, tt.core, tt.res.Core())
		})
	}
}

func TestAPIResource_GroupVersionResource(t *testing.T) {
	res := APIResource{Group: "batch", Version: "v1", Kind: "Job", Plural: "jobs"}

	assert.Equal(t, schema.GroupVersionResource{
		Group:    "batch",
		Version:  "v1",
		Resource: "jobs",
	}, res.GroupVersionResource())
}

func TestForKind(t *testing.T) {
	res := ForKind("", "v1", "Pod")

	assert.Equal(t, APIResource{Group: "", Version: "v1", Kind: "Pod", Plural: "pods"}, res)
}
