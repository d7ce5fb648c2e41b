package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/bestiary-search/internal/domain"
)

func sampleBestiaries() []domain.Bestiary {
	created := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Bestiary{
		{
			ID: 1, Name: "Ancient Dragon", AuthorID: 10, AuthorName: "mira",
			DateCreation: created, LatestUpdate: created.Add(48 * time.Hour),
			IsStar: true, Rang: 4.5, CountViews: 1200, AverageRating: 4.8,
			Description: "fire and scales", SrcIcon: "icons/dragon.png",
		},
		{
			ID: 2, Name: "Драконы Севера", AuthorID: 11, AuthorName: "oleg",
			DateCreation: created, LatestUpdate: created,
			CountViews: 3, AverageRating: 2.5,
		},
	}
}

func TestCodecRoundTrip(t *testing.T) {
	records := sampleBestiaries()

	t.Run("list", func(t *testing.T) {
		data, err := Encode(NewListEntry(records))
		require.NoError(t, err)

		got, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, KindList, got.Kind)
		assert.Nil(t, got.Record)
		assert.Equal(t, records, got.Records)
	})

	t.Run("record", func(t *testing.T) {
		data, err := Encode(NewRecordEntry(records[1]))
		require.NoError(t, err)

		got, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, KindRecord, got.Kind)
		require.NotNil(t, got.Record)
		assert.Equal(t, records[1], *got.Record)
	})
}

func TestEncodeRejectsInvalidEntry(t *testing.T) {
	_, err := Encode(nil)
	assert.Error(t, err)

	_, err = Encode(&Entry{Kind: KindRecord})
	assert.Error(t, err)

	_, err = Encode(&Entry{Kind: "blob"})
	assert.Error(t, err)
}

func TestDecodeCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ``},
		{"not json", `print("hi")`},
		{"unknown kind", `{"kind":"script"}`},
		{"unknown field", `{"kind":"list","records":[],"eval":"x"}`},
		{"record without payload", `{"kind":"record"}`},
		{"list with record", `{"kind":"list","record":{"id":1}}`},
		{"trailing data", `{"kind":"list"}{"kind":"list"}`},
		{"wrong field type", `{"kind":"list","records":[{"id":"one"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestDecodeEmptyList(t *testing.T) {
	got, err := Decode([]byte(`{"kind":"list"}`))
	require.NoError(t, err)
	assert.Equal(t, KindList, got.Kind)
	assert.Empty(t, got.Records)
}

func TestKeyspace(t *testing.T) {
	k := keyspace{prefix: "bestiary"}
	assert.Equal(t, "bestiary:list:dragon_by_name_0_0_1_0", k.BuildListKey("dragon_by_name_0_0_1_0"))
	assert.Equal(t, "bestiary:record:42", k.BuildRecordKey(42))
}

func TestLookupResult(t *testing.T) {
	assert.Equal(t, "hit", lookupResult(nil))
	assert.Equal(t, "miss", lookupResult(ErrCacheMiss))
	assert.Equal(t, "corrupt", lookupResult(ErrCorrupt))
	assert.Equal(t, "error", lookupResult(assert.AnError))
}
