package cache

import "strconv"

const (
	listSegment   = ":list:"
	recordSegment = ":record:"
)

// keyspace namespaces cache keys under a configurable prefix.
type keyspace struct {
	prefix string
}

// BuildListKey returns the key of the full result list for settingsKey.
func (k keyspace) BuildListKey(settingsKey string) string {
	return k.prefix + listSegment + settingsKey
}

// BuildRecordKey returns the key of a single bestiary.
func (k keyspace) BuildRecordKey(id int64) string {
	return k.prefix + recordSegment + strconv.FormatInt(id, 10)
}

func (k keyspace) listPrefix() string {
	return k.prefix + listSegment
}
