//go:build unit

package occupancy_test

import (
	"encoding/json"
	"testing"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("nil map reads as empty", func(t *testing.T) {
		var m *occupancy.Map
		assert.True(t, occupancy.IsFree(m, "2024-06-01", 18, "1"))
		assert.Nil(t, m.Occupied("2024-06-01", 18))
		assert.Empty(t, m.Dates())
		assert.Empty(t, m.Day("2024-06-01"))
		assert.NotNil(t, m.Clone())
	})

	t.Run("zero value accepts marks", func(t *testing.T) {
		var m occupancy.Map
		m.Mark("2024-06-01", 12, 1, "1")
		assert.True(t, m.Has("2024-06-01", 12.5, "1"))
	})

	t.Run("unknown dates and slots are free", func(t *testing.T) {
		m := occupancy.NewMap()
		m.Mark("2024-06-01", 12, 1, "1")
		assert.True(t, occupancy.IsFree(m, "1999-01-01", 12, "1"))
		assert.True(t, occupancy.IsFree(m, "not-a-date", 12, "1"))
		assert.True(t, occupancy.IsFree(m, "2024-06-01", 99, "1"))
	})

	t.Run("marking twice is idempotent", func(t *testing.T) {
		m := occupancy.NewMap()
		m.Mark("2024-06-01", 12, 1, "1")
		before := m.Snapshot()
		m.Mark("2024-06-01", 12, 1, "1")
		assert.Equal(t, before, m.Snapshot())
	})

	t.Run("clone is independent", func(t *testing.T) {
		m := occupancy.NewMap()
		m.Mark("2024-06-01", 12, 1, "1")
		clone := m.Clone()
		clone.Mark("2024-06-01", 12, 1, "2")
		clone.Mark("2024-06-02", 12, 1, "1")

		assert.Equal(t, []occupancy.TableID{"1"}, m.Occupied("2024-06-01", 12))
		assert.Equal(t, []timegrid.Date{"2024-06-01"}, m.Dates())
		assert.Equal(t, []occupancy.TableID{"1", "2"}, clone.Occupied("2024-06-01", 12))
	})
}

func TestFreeTables(t *testing.T) {
	m := occupancy.NewMap()
	m.Mark("2024-06-01", 18, 2, "5")
	m.Mark("2024-06-01", 18, 0.5, "2")

	all := []occupancy.TableID{"1", "2", "3", "4", "5"}
	assert.Equal(t, []occupancy.TableID{"1", "3", "4"}, occupancy.FreeTables(m, "2024-06-01", 18, all))
	assert.Equal(t, []occupancy.TableID{"1", "2", "3", "4"}, occupancy.FreeTables(m, "2024-06-01", 18.5, all))
	assert.Equal(t, all, occupancy.FreeTables(nil, "2024-06-01", 18, all))

	assert.Equal(t, []occupancy.TableID{"2", "5"}, occupancy.Occupied(m, "2024-06-01", 18))
	assert.Empty(t, occupancy.Occupied(m, "2024-06-02", 18))
}

func TestTableIDJSON(t *testing.T) {
	t.Run("accepts numbers and strings", func(t *testing.T) {
		var ids []occupancy.TableID
		require.NoError(t, json.Unmarshal([]byte(`[5, "7", "terrace"]`), &ids))
		assert.Equal(t, []occupancy.TableID{"5", "7", "terrace"}, ids)
	})

	t.Run("rejects empty and fractional", func(t *testing.T) {
		for _, raw := range []string{`""`, `null`, `1.5`, `true`} {
			var id occupancy.TableID
			assert.Error(t, json.Unmarshal([]byte(raw), &id), raw)
		}
	})

	t.Run("numeric ids are written as numbers", func(t *testing.T) {
		b, err := json.Marshal([]occupancy.TableID{"5", "terrace"})
		require.NoError(t, err)
		assert.JSONEq(t, `[5, "terrace"]`, string(b))
	})
}
