package report

import (
	"testing"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.ReportStatus
		wantErr  bool
	}{
		{input: "", expected: ""},
		{input: "brouillon", expected: domain.ReportDraft},
		{input: "PUBLIE", expected: domain.ReportPublished},
		{input: " archive ", expected: domain.ReportArchived},
		{input: "FINAL", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := ParseStatus(tt.input)

			if tt.wantErr {
				assert.EqualError(t, err, `unknown report status "FINAL"`)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("1500,50")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(amount))

	_, err = ParseAmount("beaucoup")
	assert.Error(t, err)
}
