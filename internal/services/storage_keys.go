package services

import (
	"fmt"
	"path"
	"strings"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/google/uuid"
)

// Object key prefixes of the import bucket.
const (
	UploadsPrefix   = "uploads/"
	InboxPrefix     = "inbox/"
	ProcessedPrefix = "processed/"
	FailedPrefix    = "failed/"
)

// UploadKey is where the raw bytes of an import are archived.
func UploadKey(ownerID, batchID uuid.UUID, filename string) string {
	return fmt.Sprintf("%s%s/%s/%s", UploadsPrefix, ownerID, batchID, safeName(filename))
}

// InboxEntry is a file dropped into the inbox for unattended import. Option
// carries the bank profile of a bank file or the settings id of an orders
// file; settlement files ignore it.
type InboxEntry struct {
	Key      string
	OwnerID  uuid.UUID
	Kind     string
	Option   string
	FileName string
}

// ParseInboxKey reads inbox/<owner>/<kind>/<option>/<filename>.
func ParseInboxKey(key string) (InboxEntry, error) {
	if !strings.HasPrefix(key, InboxPrefix) {
		return InboxEntry{}, fmt.Errorf("%w: %q is not an inbox key", ErrInvalidInput, key)
	}
	parts := strings.SplitN(strings.TrimPrefix(key, InboxPrefix), "/", 4)
	if len(parts) != 4 || parts[3] == "" || strings.HasSuffix(parts[3], "/") {
		return InboxEntry{}, fmt.Errorf("%w: inbox key %q must be inbox/<owner>/<kind>/<option>/<file>", ErrInvalidInput, key)
	}

	owner, err := uuid.Parse(parts[0])
	if err != nil {
		return InboxEntry{}, fmt.Errorf("%w: owner %q: %v", ErrInvalidInput, parts[0], err)
	}
	switch parts[1] {
	case models.ImportKindBank, models.ImportKindSettlements, models.ImportKindOrders:
	default:
		return InboxEntry{}, fmt.Errorf("%w: unknown import kind %q", ErrInvalidInput, parts[1])
	}

	option := parts[2]
	if option == "-" || option == "_" {
		option = ""
	}
	return InboxEntry{Key: key, OwnerID: owner, Kind: parts[1], Option: option, FileName: parts[3]}, nil
}

// Relocate swaps the inbox prefix of key for prefix.
func Relocate(key, prefix string) string {
	return prefix + strings.TrimPrefix(key, InboxPrefix)
}

func safeName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "upload"
	}
	return name
}
