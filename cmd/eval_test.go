package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelforge/blockquery/world"
)

func TestParsePos(t *testing.T) {
	tests := []struct {
		input   string
		want    world.Pos
		wantErr bool
	}{
		{input: "0,0,0", want: world.Pos{}},
		{input: "1,64,-3", want: world.Pos{X: 1, Y: 64, Z: -3}},
		{input: " 2 , 3 , 4 ", want: world.Pos{X: 2, Y: 3, Z: 4}},
		{input: "1,2", wantErr: true},
		{input: "1,2,3,4", wantErr: true},
		{input: "a,b,c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pos, err := parsePos(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, pos)
		})
	}
}
