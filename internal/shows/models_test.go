package shows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChairNumber(t *testing.T) {
	tests := []struct {
		label      string
		wantRow    string
		wantColumn int
		wantErr    bool
	}{
		{"A1", "A", 1, false},
		{"A12", "A", 12, false},
		{"f3", "F", 3, false},
		{" b7 ", "B", 7, false},
		{"Z99", "Z", 99, false},
		{"", "", 0, true},
		{"A", "", 0, true},
		{"1A", "", 0, true},
		{"AA", "", 0, true},
		{"A0", "", 0, true},
		{"A-1", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			row, column, err := ParseChairNumber(tt.label)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.wantColumn, column)
		})
	}
}
