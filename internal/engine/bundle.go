// Package engine implements the reconciliation core shared by all four
// controllers: it scans a shared directory for dispatcher request files,
// parses them into a uniform sequence of object records regardless of
// which of the dispatcher's two event shapes produced them, dispatches each
// record by kind to a registered handler, and writes the response file the
// dispatcher polls for.
package engine

import (
	"encoding/json"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// EventType mirrors the dispatcher's watchEvent.type values.
type EventType string

const (
	EventAdded          EventType = "Added"
	EventModified        EventType = "Modified"
	EventDeleted         EventType = "Deleted"
	EventSynchronization EventType = "Synchronization"
)

// binding is the on-wire shape of one element of a request file's JSON
// array. Exactly one of Object/Objects is normally populated; WatchEvent is
// the Grafana dispatcher variant that nests the object one level deeper.
type binding struct {
	Object     json.RawMessage `json:"object,omitempty"`
	Objects    []struct {
		Object json.RawMessage `json:"object"`
	} `json:"objects,omitempty"`
	Type       EventType `json:"type,omitempty"`
	WatchEvent *struct {
		Object json.RawMessage `json:"object"`
		Type   EventType       `json:"type,omitempty"`
	} `json:"watchEvent,omitempty"`
}

// objectHeader extracts the fields every record needs for dispatch without
// committing to a concrete spec type.
type objectHeader struct {
	Kind     string `json:"kind"`
	Metadata struct {
		Name              string     `json:"name"`
		Namespace         string     `json:"namespace,omitempty"`
		UID               string     `json:"uid,omitempty"`
		DeletionTimestamp *metav1.Time `json:"deletionTimestamp,omitempty"`
	} `json:"metadata"`
}

// Record is the internal, shape-independent representation of one object
// carried by an event bundle.
type Record struct {
	Kind              string
	Name              string
	Namespace         string
	UID               string
	DeletionTimestamp *metav1.Time
	EventType         EventType
	Raw               json.RawMessage
}

// Deleting reports whether the object carries a non-empty deletionTimestamp.
func (r Record) Deleting() bool {
	return r.DeletionTimestamp != nil && !r.DeletionTimestamp.IsZero()
}

// ParseBundle decodes a request file's top-level JSON array and flattens
// every binding into records, uniformly across the object/objects/
// watchEvent shapes.
func ParseBundle(data []byte) ([]Record, error) {
	var bindings []binding
	if err := json.Unmarshal(data, &bindings); err != nil {
		return nil, fmt.Errorf("decoding event bundle: %w", err)
	}

	var records []Record
	for _, b := range bindings {
		switch {
		case b.WatchEvent != nil && len(b.WatchEvent.Object) > 0:
			rec, err := toRecord(b.WatchEvent.Object, firstNonEmpty(b.WatchEvent.Type, b.Type))
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		case len(b.Object) > 0:
			rec, err := toRecord(b.Object, b.Type)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		case len(b.Objects) > 0:
			for _, o := range b.Objects {
				rec, err := toRecord(o.Object, firstNonEmpty(b.Type, EventSynchronization))
				if err != nil {
					return nil, err
				}
				records = append(records, rec)
			}
		}
	}
	return records, nil
}

func firstNonEmpty(vals ...EventType) EventType {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func toRecord(raw json.RawMessage, eventType EventType) (Record, error) {
	var hdr objectHeader
	if err := json.Unmarshal(raw, &hdr); err != nil {
		return Record{}, fmt.Errorf("decoding object header: %w", err)
	}
	return Record{
		Kind:              hdr.Kind,
		Name:              hdr.Metadata.Name,
		Namespace:         hdr.Metadata.Namespace,
		UID:               hdr.Metadata.UID,
		DeletionTimestamp: hdr.Metadata.DeletionTimestamp,
		EventType:         eventType,
		Raw:               raw,
	}, nil
}
