package moderation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowAllAcceptsEverything(t *testing.T) {
	ok, err := AllowAll{}.Validate(context.Background(), "theft", "anything at all")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCategoryPhrase(t *testing.T) {
	require.Equal(t, "a theft incident", CategoryPhrase("theft"))
	require.Equal(t, "a harassment incident", CategoryPhrase("harassment"))
	require.Equal(t,
		"an incident or safety concern not fitting standard categories",
		CategoryPhrase("other"))
}
