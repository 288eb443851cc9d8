package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fsdevblog/bulkmeta/internal/tokens"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GIN_MODE", "release")
	t.Setenv("LOG_LEVEL", "panic")

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: N/A")
}

func TestTokenCmd(t *testing.T) {
	out, err := execute(t, "token", "--jwt-secret", "s3cret", "--user-id", "5", "--role", "author")
	require.NoError(t, err)

	claims, err := tokens.ValidateActorJWT(strings.TrimSpace(out), []byte("s3cret"))
	require.NoError(t, err)
	assert.Equal(t, uint(5), claims.UserID)
	assert.Equal(t, "author", claims.Role)

	_, err = execute(t, "token", "--user-id", "5")
	require.Error(t, err)
}

func TestAssignCmd(t *testing.T) {
	seed := "../../internal/fixtures/testdata/posts.yaml"

	out, err := execute(t, "assign", "--seed", seed, "--role", "editor", "1", "3", "x", "99")
	require.NoError(t, err)
	assert.Equal(t, "Updated: 1\n  Empty title for: Post ID 3\n  Post ID 99 not found\n", out)

	out, err = execute(t, "assign", "--seed", seed, "--json", "2")
	require.NoError(t, err)
	var got struct {
		Updated  int      `json:"updated"`
		Messages []string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Updated)
	assert.Empty(t, got.Messages)

	_, err = execute(t, "assign", "--seed", seed)
	require.Error(t, err)

	_, err = execute(t, "assign", "--seed", seed, "--role", "subscriber", "1")
	require.Error(t, err)
}
