package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	oldRead, oldTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = oldRead, oldTerm })

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(rdr("unused\n"), "Confirm password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Confirm password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(rdr(""), "Password", &out)
	require.Error(t, err)
}

func TestGetPasswordPiped(t *testing.T) {
	oldRead, oldTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = oldRead, oldTerm })

	isTerminal = func(int) bool { return false }
	readPassword = func(int) ([]byte, error) {
		t.Fatal("terminal read on piped input")
		return nil, nil
	}

	r := rdr("pass word \r\nnext\n")
	var out bytes.Buffer
	pw, err := GetPassword(r, "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("pass word "), pw, "only the line ending is stripped")
	assert.Equal(t, "Password: ", out.String())

	rest, err := GetSimpleText(r, "Next", &out)
	require.NoError(t, err)
	assert.Equal(t, "next", rest)

	pw, err = GetPassword(rdr("tail"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("tail"), pw)

	_, err = GetPassword(rdr(""), "Password", &out)
	require.Error(t, err)
}
