package core

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashicorpToNpm(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"1.2.3", "1.2.3"},
		{"=1.2.3", "1.2.3"},
		{"= 1.2.3", "1.2.3"},
		{"=v1.2.3", "1.2.3"},
		{">1.2.3", ">1.2.3"},
		{"> 1.2.3", ">1.2.3"},
		{"<1.2.3", "<1.2.3"},
		{">=1.2.3", ">=1.2.3"},
		{"<= 1.2.3", "<=1.2.3"},
		{"~> 2", ">=2"},
		{"~> 2.1", "^2.1"},
		{"~> 2.1.3", "~2.1.3"},
		{"~>2.1.3", "~2.1.3"},
		{"~> 1.2.3-beta", "~1.2.3-beta"},
		{"~> 1.2.3+build.5", "~1.2.3+build.5"},
		{"=1.2.3-alpha.1", "1.2.3-alpha.1"},
		{">= 1.2.3, < 2.0.0", ">=1.2.3 <2.0.0"},
		{"~> 1.0, >= 1.0.4", "^1.0 >=1.0.4"},
	}

	ctx := context.Background()
	for _, tt := range tests {
		got, err := HashicorpToNpm(ctx, tt.input)
		require.NoError(t, err, "input %q", tt.input)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("input %q: unexpected output (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestHashicorpToNpmRejectsExclusion(t *testing.T) {
	tests := []string{
		"!= 1.2.3",
		"!=1.2.3",
		">= 1.0, != 1.5, < 2.0",
	}
	ctx := context.Background()
	for _, input := range tests {
		out, err := HashicorpToNpm(ctx, input)
		require.Error(t, err, "input %q", input)
		assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
		assert.Empty(t, out)
	}
}

func TestHashicorpToNpmRejectsMalformedInput(t *testing.T) {
	tests := []string{
		"abc",
		"1.2.3.4",
		"~> ",
		">= 1.2.3, bogus",
		"== 1.2.3",
		"1.2.x",
	}
	ctx := context.Background()
	for _, input := range tests {
		out, err := HashicorpToNpm(ctx, input)
		require.Error(t, err, "input %q", input)
		assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		assert.Empty(t, out)
	}
}
