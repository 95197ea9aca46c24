package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
)

func TestParseGemIDs(t *testing.T) {
	ids, err := parseGemIDs("10, 0,20")
	require.NoError(t, err)
	assert.Equal(t, []int32{10, 0, 20}, ids)

	ids, err = parseGemIDs("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = parseGemIDs("10,ruby")
	assert.Error(t, err)
}

func TestReadEquipmentSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gear.json")
	body := `{"items":[{"id":100,"enchant":{"kind":"item","id":55},"gems":[10,0]},{"id":200}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	spec, err := readEquipmentSpec(path)
	require.NoError(t, err)
	assert.Equal(t, items.EquipmentSpec{Items: []items.ItemSpec{
		{ID: 100, Enchant: items.EnchantRef{Kind: items.EnchantRefItem, ID: 55}, Gems: []int32{10, 0}},
		{ID: 200},
	}}, spec)

	_, err = readEquipmentSpec(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
