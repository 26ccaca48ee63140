package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("  Amal \n"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "Amal", got)
	assert.Contains(t, out.String(), "Name")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("no newline"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetDecimal(t *testing.T) {
	var out bytes.Buffer

	got, err := GetDecimal(reader("120.250\n"), "Price", decimal.Zero, &out)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("120.250")))

	fallback := decimal.NewFromInt(15)
	got, err = GetDecimal(reader("\n"), "Price", fallback, &out)
	require.NoError(t, err)
	assert.True(t, got.Equal(fallback))

	_, err = GetDecimal(reader("abc\n"), "Price", decimal.Zero, &out)
	assert.Error(t, err)
}

func TestGetOptionalDecimal(t *testing.T) {
	var out bytes.Buffer

	got, err := GetOptionalDecimal(reader("\n"), "Custom price", &out)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = GetOptionalDecimal(reader("450\n"), "Custom price", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(decimal.NewFromInt(450)))
}

func TestGetDate(t *testing.T) {
	var out bytes.Buffer

	got, err := GetDate(reader("2024-06-01\n"), "Start", &out)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = GetDate(reader("\n"), "Start", &out)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = GetDate(reader("01/06/2024\n"), "Start", &out)
	assert.Error(t, err)
}
