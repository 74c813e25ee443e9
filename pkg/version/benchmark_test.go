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

package version

import (
	"testing"
)

// gitVersions are shapes real API servers report.
var gitVersions = []string{
	"v1.33.5",
	"v1.33.5-eks-3025e55",
	"1.28.0-gke.1337000",
	"v1.30.2+k3s1",
	"1.29",
}

func BenchmarkParseVersion(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseVersion(gitVersions[i%len(gitVersions)])
	}
}

func BenchmarkParseVersionBare(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseVersion("1.33.5")
	}
}

func BenchmarkParseVersionSuffixed(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseVersion("v1.33.5-eks-3025e55")
	}
}

func BenchmarkVersionString(b *testing.B) {
	v := Version{Major: 1, Minor: 33, Patch: 5, Precision: 3}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkNormalizeGitVersion(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NormalizeGitVersion("v1.33.5-eks-3025e55")
	}
}

func BenchmarkNormalizeGitVersionUnparseable(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NormalizeGitVersion("weird-build")
	}
}
