package vault

import (
	"encoding/json"
	"errors"
	"regexp"
	"time"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"
)

// Collection names persisted by the application, one JSON blob each
const (
	KeyCurrentUser   = "user"
	KeyAuctions      = "auctions"
	KeyBuyerRequests = "requests"
	KeyAllUsers      = "all_users"
	KeyFeedback      = "feedback"
)

// MaxInlineMediaLength is the string length above which a value is treated as inline media
const MaxInlineMediaLength = 50000

const availabilityKey = "__vault_availability__"

var isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"}

// mediaKeys are blanked first when storage runs out of room
var mediaKeys = map[string]struct{}{
	"image":        {},
	"imageUrl":     {},
	"images":       {},
	"media":        {},
	"video":        {},
	"videoUrl":     {},
	"avatar":       {},
	"auctionImage": {},
}

// Vault serializes application collections into a Storage under a namespace
type Vault struct {
	storage   Storage
	namespace string
}

// New creates a vault whose keys are prefixed with namespace
func New(storage Storage, namespace string) *Vault {
	return &Vault{storage: storage, namespace: namespace}
}

func (v *Vault) key(name string) string {
	if v.namespace == "" {
		return name
	}
	return v.namespace + "_" + name
}

// Read returns the decoded value stored under name with every ISO-8601 string turned into a time.Time.
// Missing keys and undecodable blobs both read as absent.
func (v *Vault) Read(name string) (any, bool) {
	raw, ok := v.raw(name)
	if !ok {
		return nil, false
	}
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		utils.Warn("vault: discarding undecodable blob", map[string]any{"key": v.key(name), "error": err.Error()})
		return nil, false
	}
	return ReviveDates(value), true
}

// ReadInto decodes the blob stored under name into dest
func (v *Vault) ReadInto(name string, dest any) bool {
	raw, ok := v.raw(name)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		utils.Warn("vault: discarding undecodable blob", map[string]any{"key": v.key(name), "error": err.Error()})
		return false
	}
	return true
}

func (v *Vault) raw(name string) (string, bool) {
	raw, ok, err := v.storage.Get(v.key(name))
	if err != nil {
		utils.Error("vault: read failed", map[string]any{"key": v.key(name), "error": err.Error()})
		return "", false
	}
	return raw, ok
}

// Write replaces the blob under name. When storage is full it blanks media fields and retries once;
// a second failure is logged and the write is dropped. The result reports whether anything was stored.
func (v *Vault) Write(name string, value any) bool {
	key := v.key(name)
	data, err := json.Marshal(value)
	if err != nil {
		utils.Error("vault: encode failed", map[string]any{"key": key, "error": err.Error()})
		return false
	}

	err = v.storage.Set(key, string(data))
	if err == nil {
		return true
	}
	if !errors.Is(err, marketerrors.ErrQuotaExceeded) {
		utils.Error("vault: write failed", map[string]any{"key": key, "error": err.Error()})
		return false
	}

	utils.Warn("vault: quota exceeded, stripping media and retrying", map[string]any{"key": key, "bytes": len(data)})
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		utils.Error("vault: recovery decode failed", map[string]any{"key": key, "error": err.Error()})
		return false
	}
	stripped, err := json.Marshal(StripMedia(generic))
	if err != nil {
		utils.Error("vault: recovery encode failed", map[string]any{"key": key, "error": err.Error()})
		return false
	}
	if err := v.storage.Set(key, string(stripped)); err != nil {
		utils.Error("vault: write dropped after media recovery", map[string]any{"key": key, "bytes": len(stripped), "error": err.Error()})
		return false
	}
	utils.Info("vault: write succeeded after media recovery", map[string]any{"key": key, "bytes": len(stripped)})
	return true
}

// Remove deletes the blob under name
func (v *Vault) Remove(name string) {
	if err := v.storage.Remove(v.key(name)); err != nil {
		utils.Warn("vault: remove failed", map[string]any{"key": v.key(name), "error": err.Error()})
	}
}

// Available reports whether the underlying storage accepts writes at all
func (v *Vault) Available() bool {
	k := v.key(availabilityKey)
	if err := v.storage.Set(k, "1"); err != nil {
		return false
	}
	if err := v.storage.Remove(k); err != nil {
		utils.Debug("vault: availability check cleanup failed", map[string]any{"key": k, "error": err.Error()})
	}
	return true
}

// ReviveDates walks a decoded JSON value and replaces ISO-8601 date-time strings with time.Time in place
func ReviveDates(value any) any {
	switch t := value.(type) {
	case string:
		if isoDatePrefix.MatchString(t) {
			for _, layout := range dateLayouts {
				if parsed, err := time.Parse(layout, t); err == nil {
					return parsed
				}
			}
		}
		return t
	case map[string]any:
		for k, v := range t {
			t[k] = ReviveDates(v)
		}
		return t
	case []any:
		for i, v := range t {
			t[i] = ReviveDates(v)
		}
		return t
	default:
		return value
	}
}

// StripMedia blanks media-keyed fields and oversized strings anywhere in a decoded JSON value
func StripMedia(value any) any {
	switch t := value.(type) {
	case string:
		if len(t) > MaxInlineMediaLength {
			return ""
		}
		return t
	case map[string]any:
		for k, v := range t {
			if _, isMedia := mediaKeys[k]; isMedia {
				switch v.(type) {
				case []any:
					t[k] = []any{}
				case string:
					t[k] = ""
				}
				continue
			}
			t[k] = StripMedia(v)
		}
		return t
	case []any:
		for i, v := range t {
			t[i] = StripMedia(v)
		}
		return t
	default:
		return value
	}
}
