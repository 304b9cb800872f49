package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPeopleOrgs_ShouldReturnNothing_ForEmptyText(t *testing.T) {
	assert.Empty(t, extractPeopleOrgs("   "))
}

func TestExtractPeopleOrgs_ShouldDropPureStopwordSpans(t *testing.T) {
	assert.True(t, isStopSpan("The"))
	assert.True(t, isStopSpan("is are"))
	assert.False(t, isStopSpan("Anton"))
}

func TestEntityType_ShouldMapProseLabelsAndRejectOthers(t *testing.T) {
	assert.Equal(t, TypePerson, entityType("PERSON"))
	assert.Equal(t, TypeOrganization, entityType("ORGANIZATION"))
	assert.Equal(t, EntityType(""), entityType("LOCATION"))
}
