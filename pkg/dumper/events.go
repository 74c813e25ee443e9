package dumper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/NVIDIA/cluster-archive/pkg/defaults"
	"github.com/NVIDIA/cluster-archive/pkg/layout"
)

// correlateEvents runs after every type has been dumped. It groups cluster
// events by the object they refer to and writes each group's messages next
// to that object's raw file. The raw file on disk is the index of what was
// archived: groups whose object has no raw file are skipped, since their
// type was either filtered out or failed to list.
func (d *Dumper) correlateEvents(ctx context.Context) error {
	if err := d.pace(ctx); err != nil {
		return err
	}

	list, err := d.Clientset.CoreV1().Events(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		slog.Warn("failed to list events, skipping correlation", "error", err)
		return nil
	}

	groups := make(map[string][]string)
	ids := make(map[string]layout.ObjectIdentity)

	for i := range list.Items {
		ev := &list.Items[i]
		ref := ev.InvolvedObject
		if ref.Kind == "" || ref.Name == "" {
			d.sum.EventsDropped++
			slog.Warn("event has no usable object reference, dropping",
				"namespace", ev.Namespace,
				"name", ev.Name,
				"reason", ev.Reason)
			continue
		}

		id := layout.ObjectIdentity{
			Group:     groupFromAPIVersion(ref.APIVersion),
			Kind:      ref.Kind,
			Namespace: ref.Namespace,
			Name:      ref.Name,
		}
		key := id.String()
		if _, seen := ids[key]; !seen {
			ids[key] = id
		}
		groups[key] = append(groups[key], ev.Message)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		id := ids[key]
		if _, err := os.Stat(d.Layout.RawPath(id)); err != nil {
			dumpEventGroups.WithLabelValues(statusSkipped).Inc()
			d.sum.EventGroupsSkipped++
			slog.Warn("events refer to an object that was not archived, skipping",
				"object", key,
				"events", len(groups[key]))
			continue
		}

		content := strings.Join(groups[key], "\n")
		if err := os.WriteFile(d.Layout.EventsPath(id), []byte(content), defaults.FileMode); err != nil {
			return fmt.Errorf("failed to write events for %s: %w", id, err)
		}
		dumpEventGroups.WithLabelValues(statusWritten).Inc()
		d.sum.EventGroupsWritten++
	}
	return nil
}

// groupFromAPIVersion extracts the API group from an object reference's
// apiVersion. References carry "group/version" or bare "version" for the
// core group; a bare group name with no version is indistinguishable from
// a core version string here and maps to core.
func groupFromAPIVersion(apiVersion string) string {
	if i := strings.Index(apiVersion, "/"); i >= 0 {
		return apiVersion[:i]
	}
	return ""
}
