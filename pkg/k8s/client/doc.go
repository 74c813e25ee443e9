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

// Package client builds the Kubernetes API handles used by a dump run.
//
// A run needs three views of the same cluster: the typed clientset for the
// kinds with dedicated enrichment (pods, config maps, secrets, events) and
// for discovery, and the dynamic client for the arbitrary types the catalog
// names. Build creates both from one resolved rest.Config so they share
// authentication and rate limits:
//
//	import "github.com/NVIDIA/cluster-archive/pkg/k8s/client"
//
//	clients, err := client.Build(kubeconfigFlag)
//	if err != nil {
//	    return fmt.Errorf("failed to build kubernetes clients: %w", err)
//	}
//
//	pods, err := clients.Clientset.CoreV1().Pods("default").List(ctx, metav1.ListOptions{})
//
// # Authentication Modes
//
// Configuration resolution handles both in-cluster and out-of-cluster
// execution:
//
// Out-of-cluster (running locally or on a non-K8s host):
//   - An explicit kubeconfig path wins when given
//   - The KUBECONFIG environment variable is checked next
//   - ~/.kube/config is used when it exists
//
// In-cluster (running as a Kubernetes Pod/Job):
//   - Falls back to service account credentials from
//     /var/run/secrets/kubernetes.io/serviceaccount/
//
// # Rate Limits
//
// The resolved config carries the QPS and burst values from pkg/defaults.
// A dump issues one list call per discovered type in quick succession, and
// client-go's stock limits would stretch a large cluster's enumeration by
// minutes.
package client
