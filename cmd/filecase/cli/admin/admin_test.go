package admin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func runHashPassword(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewAdminCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"hash-password"}, args...))

	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestHashPassword_Flag(t *testing.T) {
	hash, err := runHashPassword(t, "", "--password", "s3cret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}

func TestHashPassword_Stdin(t *testing.T) {
	hash, err := runHashPassword(t, "from-stdin\n")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("from-stdin")))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := runHashPassword(t, "\n")
	assert.Error(t, err)
}
