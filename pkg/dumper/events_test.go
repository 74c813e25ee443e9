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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	"github.com/NVIDIA/cluster-archive/pkg/discovery"
)

func event(name string, ref corev1.ObjectReference, message string) *corev1.Event {
	ns := ref.Namespace
	if ns == "" {
		ns = "default"
	}
	return &corev1.Event{
		ObjectMeta:     metav1.ObjectMeta{Name: name, Namespace: ns},
		InvolvedObject: ref,
		Reason:         "Testing",
		Message:        message,
	}
}

func deploymentObject(namespace, name string) *unstructured.Unstructured {
	return &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": "apps/v1",
		"kind":       "Deployment",
		"metadata":   map[string]any{"name": name, "namespace": namespace},
		"spec":       map[string]any{"replicas": int64(1)},
	}}
}

func TestRun_CorrelatesEventsToArchivedObjects(t *testing.T) {
	root := t.TempDir()
	catalog := []discovery.APIResource{
		{Group: "", Version: "v1", Kind: "Pod", Plural: "pods"},
	}
	webRef := corev1.ObjectReference{
		APIVersion: "v1", Kind: "Pod", Namespace: "default", Name: "web-0",
	}
	goneRef := corev1.ObjectReference{
		APIVersion: "v1", Kind: "Pod", Namespace: "default", Name: "gone-0",
	}

	d := newTestDumper(t, root, catalog, podObject("default", "web-0", "app"))
	d.Logs = stubLogs{}
	d.Clientset = fake.NewClientset(
		event("web-0.1", webRef, "Pulled image \"nginx\""),
		event("web-0.2", webRef, "Started container app"),
		event("gone-0.1", goneRef, "Killing"),
	)

	sum, err := d.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "default", "Pod", "web-0", "events.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Pulled image \"nginx\"\nStarted container app", string(data),
		"messages joined with newlines in list order")

	assert.Equal(t, 1, sum.EventGroupsWritten)
	assert.Equal(t, 1, sum.EventGroupsSkipped, "events for unarchived objects are skipped")
	assert.Equal(t, 0, sum.EventsDropped)
}

func TestRun_DropsEventsWithoutReference(t *testing.T) {
	root := t.TempDir()
	d := newTestDumper(t, root, nil)
	d.Clientset = fake.NewClientset(
		event("orphan.1", corev1.ObjectReference{Namespace: "default"}, "no kind"),
		event("orphan.2", corev1.ObjectReference{Kind: "Pod", Namespace: "default"}, "no name"),
	)

	sum, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sum.EventsDropped)
	assert.Equal(t, 0, sum.EventGroupsWritten)
	assert.Equal(t, 0, sum.EventGroupsSkipped)
}

func TestRun_EventGroupDerivedFromAPIVersion(t *testing.T) {
	root := t.TempDir()
	catalog := []discovery.APIResource{
		{Group: "apps", Version: "v1", Kind: "Deployment", Plural: "deployments"},
	}
	d := newTestDumper(t, root, catalog, deploymentObject("prod", "web"))
	d.Clientset = fake.NewClientset(
		event("web.1", corev1.ObjectReference{
			APIVersion: "apps/v1", Kind: "Deployment", Namespace: "prod", Name: "web",
		}, "Scaled up replica set"),
	)

	sum, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "prod", "apps", "Deployment", "web", "events.txt"))
	assert.Equal(t, 1, sum.EventGroupsWritten)
}

func TestRun_EventListFailureDegrades(t *testing.T) {
	root := t.TempDir()
	d := newTestDumper(t, root, nil)

	cs := fake.NewClientset()
	cs.PrependReactor("list", "events", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, errors.New("events are unavailable")
	})
	d.Clientset = cs

	sum, err := d.Run(context.Background())
	require.NoError(t, err, "a failed event list degrades correlation, not the run")
	assert.Equal(t, 0, sum.EventGroupsWritten)
}

func TestGroupFromAPIVersion(t *testing.T) {
	tests := []struct {
		apiVersion string
		want       string
	}{
		{"v1", ""},
		{"apps/v1", "apps"},
		{"rbac.authorization.k8s.io/v1", "rbac.authorization.k8s.io"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.apiVersion, func(t *testing.T) {
			assert.Equal(t, tt.want, groupFromAPIVersion(tt.apiVersion))
		})
	}
}
