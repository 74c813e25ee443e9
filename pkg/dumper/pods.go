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

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/client-go/kubernetes"

	"github.com/NVIDIA/cluster-archive/pkg/defaults"
	"github.com/NVIDIA/cluster-archive/pkg/layout"
)

// LogSource fetches container logs. The boolean reports whether logs were
// available: rotated-away, never-started, or forbidden logs all come back
// as absent rather than as an error.
type LogSource interface {
	ContainerLogs(ctx context.Context, namespace, pod, container string, previous bool) (string, bool)
}

// clientsetLogs fetches logs through the typed API client.
type clientsetLogs struct {
	cs kubernetes.Interface
}

func (s clientsetLogs) ContainerLogs(ctx context.Context, namespace, pod, container string, previous bool) (string, bool) {
	opts := &corev1.PodLogOptions{
		Container:  container,
		Previous:   previous,
		Timestamps: true,
	}
	data, err := s.cs.CoreV1().Pods(namespace).GetLogs(pod, opts).DoRaw(ctx)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (d *Dumper) logSource() LogSource {
	if d.Logs != nil {
		return d.Logs
	}
	return clientsetLogs{cs: d.Clientset}
}

// podEnricher writes current and previous logs for each container named
// in the pod spec. Absent logs leave no file; a present log that cannot
// be written aborts the run like any other write failure.
type podEnricher struct{}

func (podEnricher) Enrich(ctx context.Context, d *Dumper, id layout.ObjectIdentity, obj *unstructured.Unstructured) error {
	containers, _, err := unstructured.NestedSlice(obj.Object, "spec", "containers")
	if err != nil {
		slog.Warn("pod spec containers not readable, skipping logs",
			"object", id.String(), "error", err)
		return nil
	}

	src := d.logSource()
	for _, c := range containers {
		container, ok := c.(map[string]any)
		if !ok {
			continue
		}
		name, _ := container["name"].(string)
		if name == "" {
			continue
		}
		for _, previous := range []bool{false, true} {
			content, found := src.ContainerLogs(ctx, id.Namespace, id.Name, name, previous)
			if !found {
				dumpLogFetches.WithLabelValues(statusAbsent).Inc()
				slog.Debug("no logs available",
					"object", id.String(), "container", name, "previous", previous)
				continue
			}
			dumpLogFetches.WithLabelValues(statusPresent).Inc()
			path := d.Layout.ContainerLogPath(id, name, previous)
			if err := os.WriteFile(path, []byte(content), defaults.FileMode); err != nil {
				return fmt.Errorf("failed to write logs for %s container %s: %w", id, name, err)
			}
			d.sum.LogFiles++
		}
	}
	return nil
}
