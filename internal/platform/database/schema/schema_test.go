package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fyyur/internal/platform/database/schema"
)

func TestBuilders(t *testing.T) {
	assert.Equal(t, "id, name", schema.List("", "id", "name"))
	assert.Equal(t, "v.id, v.name", schema.List("v", "id", "name"))
	assert.Equal(t, "$2, $3, $4", schema.Placeholders(2, 3))
	assert.Equal(t, "name = $2, city = $3", schema.Assignments(2, "name", "city"))
}

func TestColumns_Order(t *testing.T) {
	venueColumns := schema.CoreVenue.Columns()
	assert.Equal(t, "id", venueColumns[0])
	assert.Equal(t, "updatedat", venueColumns[len(venueColumns)-1])
	assert.Len(t, venueColumns, len(schema.CoreVenue.Editable())+3)

	artistColumns := schema.CoreArtist.Columns()
	assert.Len(t, artistColumns, len(schema.CoreArtist.Editable())+3)
}
