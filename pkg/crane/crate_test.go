package crane_test

import (
	"testing"

	"github.com/arthur-debert/cranes/pkg/crane"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCrate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    rune
		wantErr bool
		kind    crane.CrateErrorKind
	}{
		{name: "plain", input: "[A]", want: 'A'},
		{name: "padded", input: " [Z] ", want: 'Z'},
		{name: "non_ascii", input: "[é]", want: 'é'},
		{name: "missing_prefix", input: "A]", wantErr: true, kind: crane.CrateMissingPrefix},
		{name: "missing_suffix", input: "[A", wantErr: true, kind: crane.CrateMissingSuffix},
		{name: "missing_label", input: "[]", wantErr: true, kind: crane.CrateMissingLabel},
		{name: "label_too_long", input: "[AB]", wantErr: true, kind: crane.CrateLabelTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := crane.ParseCrate(tt.input)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, c.Label())
				return
			}
			var parseErr *crane.CrateParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.kind, parseErr.Kind)
			assert.Equal(t, tt.input, parseErr.Slot)
		})
	}
}

func TestCrateString(t *testing.T) {
	c := crane.NewCrate('Q')
	assert.Equal(t, "[Q]", c.String())

	back, err := crane.ParseCrate(c.String())
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
