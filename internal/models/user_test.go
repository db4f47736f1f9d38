package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRecord_Label(t *testing.T) {
	withEmail := UserRecord{FirstName: "Jane", LastName: "Doe", Email: "jane@example.org"}
	assert.Equal(t, "Doe, Jane (jane@example.org)", withEmail.Label())

	withoutEmail := UserRecord{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Doe, Jane", withoutEmail.Label())

	naEmail := UserRecord{FirstName: "Jane", LastName: "Doe", Email: "NA"}
	assert.Equal(t, "Doe, Jane", naEmail.Label())
}
