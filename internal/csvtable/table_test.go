package csvtable

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pairSchema = Schema{
	Columns:  []string{"PhoneCode", "Description"},
	FromLine: 2,
}

func TestParse_SkipsHeader(t *testing.T) {
	text := "Phone Code,Description\n2,Santiago\n32,\"Valparaíso, Viña\"\n"

	records, err := Parse(text, pairSchema)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "2", records[0].String("PhoneCode"))
	assert.Equal(t, "Santiago", records[0].String("Description"))
	assert.Equal(t, "Valparaíso, Viña", records[1].String("Description"))
	assert.Equal(t, 2, records[1].Len())
}

func TestParse_HeaderOnly(t *testing.T) {
	records, err := Parse("Phone Code,Description\n", pairSchema)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestParse_HeaderMayDifferInWidth(t *testing.T) {
	records, err := Parse("only one header\n1,a\n", pairSchema)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestParse_FieldCountMismatch(t *testing.T) {
	_, err := Parse("h1,h2\n1,a\n2,b,extra\n", pairSchema)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Empty(t, pe.Column)
	assert.Contains(t, err.Error(), "expected 2 fields, got 3")
}

func TestParse_CastFailure(t *testing.T) {
	schema := Schema{
		Columns: []string{"Name", "Area"},
		Cast: func(column, raw string) (any, error) {
			if column != "Area" {
				return raw, nil
			}

			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, err
			}

			return &f, nil
		},
	}

	records, err := Parse("Chile,756102\n", schema)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Number("Area"))
	assert.InDelta(t, 756102.0, *records[0].Number("Area"), 0)

	_, err = Parse("Chile,756102\nPeru,big\n", schema)
	require.ErrorIs(t, err, ErrParse)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "Area", pe.Column)

	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
}

func TestRecord_AccessorsOnWrongTypes(t *testing.T) {
	records, err := Parse("a,b\n", Schema{Columns: []string{"X", "Y"}})
	require.NoError(t, err)

	rec := records[0]
	assert.Nil(t, rec.Get("Z"))
	assert.Nil(t, rec.Strings("X"))
	assert.Nil(t, rec.Number("X"))
	assert.Equal(t, "", rec.String("Z"))
}

func TestDecodeLatin1(t *testing.T) {
	// "Curaçao,Åland" in ISO-8859-1
	raw := []byte{'C', 'u', 'r', 'a', 0xE7, 'a', 'o', ',', 0xC5, 'l', 'a', 'n', 'd'}

	text, err := DecodeLatin1(raw)
	require.NoError(t, err)
	assert.Equal(t, "Curaçao,Åland", text)

	records, err := Parse(text, Schema{Columns: []string{"A", "B"}})
	require.NoError(t, err)
	assert.Equal(t, "Åland", records[0].String("B"))
}

func TestParse_CRLF(t *testing.T) {
	text := strings.ReplaceAll("h,h\n1,a\n2,b\n", "\n", "\r\n")

	records, err := Parse(text, pairSchema)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[1].String("Description"))
}
