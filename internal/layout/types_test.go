package layout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultMarshalJSON_ShouldNestDistrictBoundCenters(t *testing.T) {
	result := Result{
		Algorithm: "brain-optimized-v2",
		DistrictBounds: map[string]DistrictBound{
			"trading": {CenterX: 60, CenterZ: 0, Radius: 40, EntityCount: 3, Color: "#e8a33d"},
		},
		ActiveDistrict:   "trading",
		DistrictActivity: map[string]float64{"trading": 1.0},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	bounds := decoded["district_bounds"].(map[string]interface{})
	trading := bounds["trading"].(map[string]interface{})
	center := trading["center"].(map[string]interface{})

	assert.Equal(t, 60.0, center["x"])
	assert.Equal(t, 0.0, center["z"])
	assert.Equal(t, 40.0, trading["radius"])
	assert.NotContains(t, trading, "CenterX")
}

func TestDefaultConfig_ShouldMatchTheDocumentedDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 150, cfg.Iterations)
	assert.Equal(t, 80.0, cfg.Bounds)
	assert.Equal(t, 150, cfg.MaxConnections)
	assert.Len(t, cfg.Districts, 5)
}
