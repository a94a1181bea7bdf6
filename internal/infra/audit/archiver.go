package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"salescore/internal/core"
	"salescore/internal/infra/blob"
)

// BlobArchiver writes each audit entry as a JSON object into a blob store,
// keyed <prefix>/<yyyy>/<mm>/<dd>/<id>.json. Entry ids are unique, so the
// create-only Put never collides.
type BlobArchiver struct {
	store  blob.Store
	prefix string
	logger core.Logger
}

// NewBlobArchiver wraps a blob store as an audit sink. An empty prefix
// defaults to "audit"; a nil logger drops archive failures silently.
func NewBlobArchiver(store blob.Store, prefix string, logger core.Logger) *BlobArchiver {
	if prefix == "" {
		prefix = "audit"
	}
	return &BlobArchiver{store: store, prefix: strings.TrimSuffix(prefix, "/"), logger: logger}
}

// Record implements core.AuditRecorder.
func (a *BlobArchiver) Record(ctx context.Context, entry core.AuditEntry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		if a.logger != nil {
			a.logger.Error("audit archive encoding failed", "operation", entry.Operation, "error", err.Error())
		}
		return
	}
	key := a.prefix + "/" + entry.Timestamp.UTC().Format("2006/01/02") + "/" + entry.ID + ".json"
	if _, err := a.store.Put(ctx, key, bytes.NewReader(payload), blob.PutOptions{ContentType: "application/json"}); err != nil {
		if a.logger != nil {
			a.logger.Error("audit archive write failed", "key", key, "error", err.Error())
		}
	}
}

// List returns metadata for the archived entries under the configured prefix.
func (a *BlobArchiver) List(ctx context.Context) ([]blob.Info, error) {
	return a.store.List(ctx, a.prefix+"/")
}

// Fanout dispatches each entry to every recorder in order.
type Fanout []core.AuditRecorder

// Record implements core.AuditRecorder.
func (f Fanout) Record(ctx context.Context, entry core.AuditEntry) {
	for _, recorder := range f {
		recorder.Record(ctx, entry)
	}
}
