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

// Package strip removes noisy content from dumped objects before they are
// written to disk.
//
// A strip operation is a named in-place transform over the untyped content
// tree of an object. Operations are requested by name at configuration
// time, resolved against a registry, and applied in the requested order to
// every dumped object. Unknown names are rejected when parsed, never
// mid-dump.
package strip

import (
	"fmt"
)

// ManagedFields nulls out metadata.managedFields, by far the largest and
// least interesting part of a typical object.
const ManagedFields = "managed-fields"

// Func mutates an object's content tree in place.
type Func func(obj map[string]any)

var registry = map[string]Func{
	ManagedFields: stripManagedFields,
}

// Register adds a named strip operation to the registry. It is intended to
// be called from init functions; registering a duplicate or empty name
// panics.
func Register(name string, fn Func) {
	if name == "" || fn == nil {
		panic("strip: Register requires a name and a function")
	}
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("strip: operation %q registered twice", name))
	}
	registry[name] = fn
}

// Strips is an ordered set of resolved strip operations.
type Strips struct {
	names []string
	funcs []Func
}

// Parse resolves operation names against the registry, preserving order.
// An unknown name is a configuration error.
func Parse(names []string) (Strips, error) {
	s := Strips{
		names: make([]string, 0, len(names)),
		funcs: make([]Func, 0, len(names)),
	}
	for _, name := range names {
		fn, ok := registry[name]
		if !ok {
			return Strips{}, fmt.Errorf("unknown strip operation: %q", name)
		}
		s.names = append(s.names, name)
		s.funcs = append(s.funcs, fn)
	}
	return s, nil
}

// Apply runs every operation against the object, in order.
func (s Strips) Apply(obj map[string]any) {
	for _, fn := range s.funcs {
		fn(obj)
	}
}

// Names returns the operation names in application order.
func (s Strips) Names() []string {
	return s.names
}

func stripManagedFields(obj map[string]any) {
	meta, ok := obj["metadata"].(map[string]any)
	if !ok {
		return
	}
	// The key is kept with a null value so consumers that expect it
	// still find it.
	if _, ok := meta["managedFields"]; ok {
		meta["managedFields"] = nil
	}
}
