package sqlstore

import (
	"encoding/json"

	"github.com/uptrace/bun"
)

// configModel backs queuectl's durable key/value configuration store.
// Value is stored as a JSON-encoded string, the same way the Python
// original stores json.dumps(value) in its "config" table.
type configModel struct {
	bun.BaseModel `bun:"table:config,alias:c"`

	Key   string          `bun:"key,pk"`
	Value json.RawMessage `bun:"value,type:text,notnull"`
}
