package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.234))
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.235001))
	assert.Equal(t, -2.5, RoundWithTwoDecimalPlace(-2.499999))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, id, 10)

	other, err := GenerateID()
	assert.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 1.23, Percentage(0.01234))
	assert.Equal(t, 75.5, Percentage(0.755))
	assert.Equal(t, 0.0, Percentage(0))
}
