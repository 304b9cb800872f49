package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignDistrict_ShouldScoreByKeywordContainment(t *testing.T) {
	districts := DefaultDistricts()

	got := assignDistrict(districts, "Portfolio Allocation Review")

	assert.Equal(t, "trading", got.Name)
}

func TestAssignDistrict_ShouldFallBackToMemoryOnZeroScore(t *testing.T) {
	districts := DefaultDistricts()

	got := assignDistrict(districts, "Anton")

	assert.Equal(t, "memory", got.Name)
}

func TestAssignDistrict_ShouldPreferDeclarationOrderOnTies(t *testing.T) {
	districts := []District{
		{Name: "first", Keywords: []string{"shared"}},
		{Name: "second", Keywords: []string{"shared"}},
	}

	got := assignDistrict(districts, "shared label")

	assert.Equal(t, "first", got.Name)
}

func TestAssignDistrict_ShouldScoreKubernetesIntoInfrastructure(t *testing.T) {
	districts := DefaultDistricts()

	got := assignDistrict(districts, "Kubernetes Deploy Pipeline")

	assert.Equal(t, "infrastructure", got.Name)
}

func TestByName_ShouldFindAnExistingDistrict(t *testing.T) {
	districts := DefaultDistricts()

	got := byName(districts, "core")

	assert.Equal(t, "core", got.Name)
}

func TestByName_ShouldFallBackToTheLastEntryWhenMissing(t *testing.T) {
	districts := DefaultDistricts()

	got := byName(districts, "nonexistent")

	assert.Equal(t, districts[len(districts)-1].Name, got.Name)
}
