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

package client

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/cluster-archive/pkg/defaults"
)

const testKubeconfig = `apiVersion: v1
kind: Config
clusters:
- cluster:
    server: https://127.0.0.1:6443
  name: test
contexts:
- context:
    cluster: test
    user: test
  name: test
current-context: test
users:
- name: test
  user:
    token: abc123
`

func writeKubeconfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kubeconfig")
	if err := os.WriteFile(path, []byte(testKubeconfig), 0o600); err != nil {
		t.Fatalf("failed to write kubeconfig: %v", err)
	}
	return path
}

func TestBuild_ExplicitKubeconfig(t *testing.T) {
	clients, err := Build(writeKubeconfig(t))
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if clients.Clientset == nil {
		t.Error("expected a typed clientset")
	}
	if clients.Dynamic == nil {
		t.Error("expected a dynamic client")
	}
	if clients.Discovery() == nil {
		t.Error("expected a discovery client")
	}
	if clients.Config.QPS != defaults.ClientQPS {
		t.Errorf("expected QPS %v, got %v", float32(defaults.ClientQPS), clients.Config.QPS)
	}
	if clients.Config.Burst != defaults.ClientBurst {
		t.Errorf("expected Burst %d, got %d", defaults.ClientBurst, clients.Config.Burst)
	}
}

func TestBuild_KubeconfigFromEnv(t *testing.T) {
	t.Setenv("KUBECONFIG", writeKubeconfig(t))

	clients, err := Build("")
	if err != nil {
		t.Fatalf("Build() with KUBECONFIG failed: %v", err)
	}
	if clients.Clientset == nil {
		t.Error("expected a typed clientset")
	}
}

func TestBuild_PathResolutionErrors(t *testing.T) {
	tests := []struct {
		name          string
		kubeconfigArg string
		kubeconfigEnv string
		errorContains string
	}{
		{
			name:          "explicit missing path",
			kubeconfigArg: "/nonexistent/path/to/kubeconfig",
			errorContains: "failed to build kube config",
		},
		{
			name:          "env var with missing path",
			kubeconfigEnv: "/nonexistent/env/kubeconfig",
			errorContains: "failed to build kube config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KUBECONFIG", tt.kubeconfigEnv)

			_, err := Build(tt.kubeconfigArg)
			if err == nil {
				t.Fatal("Build() should fail for missing kubeconfig")
			}
			if !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("Build() error = %v, want error containing %q", err, tt.errorContains)
			}
		})
	}
}

func TestBuild_MalformedKubeconfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	if err := os.WriteFile(path, []byte("not a kubeconfig"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Build(path)
	if err == nil {
		t.Fatal("Build() with malformed config should return error")
	}
}

// Auto-discovery depends on the environment (~/.kube/config, in-cluster
// service account), so only verify it completes with a consistent result.
func TestBuild_AutoDiscovery(t *testing.T) {
	t.Setenv("KUBECONFIG", "")
	t.Setenv("HOME", t.TempDir())

	_, err := Build("")
	if err != nil {
		t.Logf("Build() auto-discovery failed (no valid config found): %v", err)
	} else {
		t.Log("Build() auto-discovery succeeded (in-cluster config present)")
	}
}
