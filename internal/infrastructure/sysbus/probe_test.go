package sysbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSystemdVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "255", want: 255},
		{input: "255.4-1ubuntu8", want: 255},
		{input: "v256", want: 256},
		{input: " 249.11 ", want: 249},
		{input: "systemd 249 (249.11-0ubuntu3)", want: 249},
		{input: "", wantErr: true},
		{input: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSystemdVersion(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProbe_BuildNumber(t *testing.T) {
	conn := newFakeConn()
	conn.object(systemdPath).properties[systemdManagerInterface+".Version"] = "255.4-1ubuntu8"

	build, err := NewProbe(NewBus(conn)).BuildNumber(testContext())
	require.NoError(t, err)
	assert.Equal(t, 255, build)
}

func TestProbe_BuildNumber_Unavailable(t *testing.T) {
	_, err := NewProbe(NewBus(newFakeConn())).BuildNumber(testContext())
	assert.Error(t, err)
}
