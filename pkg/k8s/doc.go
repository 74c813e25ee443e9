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

// Package k8s provides Kubernetes integration for cluster-archive.
//
// # Sub-packages
//
// client: Kubernetes client construction with automatic authentication
//
//	clients, err := client.Build(kubeconfig)
//	if err != nil {
//	    return err
//	}
//	// clients.Clientset for typed API operations and discovery
//	// clients.Dynamic for listing arbitrary resource types
//
// # Architecture
//
// The client package resolves its configuration in a fixed order:
//
//   - An explicit kubeconfig path, when one is given.
//   - The KUBECONFIG environment variable.
//   - ~/.kube/config, when the file exists.
//   - In-cluster configuration (service account), as the final fallback.
//
// The returned rest.Config carries raised QPS and burst limits. A full
// cluster dump issues one list call per discovered resource type, which
// client-go's default limits would throttle into multi-minute runs.
//
// # Usage Patterns
//
// Import and use the client sub-package:
//
//	import "github.com/NVIDIA/cluster-archive/pkg/k8s/client"
//
//	clients, err := client.Build("")
//	if err != nil {
//	    return err
//	}
//	version, err := clients.Discovery().ServerVersion()
package k8s
