package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRiskLevel(t *testing.T) {
	assert.True(t, ValidRiskLevel(RiskLevelLow))
	assert.True(t, ValidRiskLevel(RiskLevelMedium))
	assert.True(t, ValidRiskLevel(RiskLevelHigh))

	assert.False(t, ValidRiskLevel(""))
	assert.False(t, ValidRiskLevel("high"))
	assert.False(t, ValidRiskLevel("CRITICAL"))
}
