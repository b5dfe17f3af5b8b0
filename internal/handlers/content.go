package handlers

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/yasseriouss/yasser-portfolio-new/internal/cache"
	"github.com/yasseriouss/yasser-portfolio-new/internal/store"
)

// ContentHandler carries the admin-only CRUD surface for every curated
// entity. All routes behind it are wrapped by the admin role gate; each
// successful mutation invalidates the public read cache.
type ContentHandler struct {
	Store *store.Store
	Cache *cache.Cache
}

func NewContentHandler(st *store.Store, ch *cache.Cache) *ContentHandler {
	return &ContentHandler{Store: st, Cache: ch}
}

// jsonList encodes a string slice for a datatypes.JSON column. The server
// is the only writer, so the stored value is always a well-formed array.
func jsonList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}
