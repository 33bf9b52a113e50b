package record_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/record"
)

func TestDecode(t *testing.T) {
	rec, err := record.Decode([]byte(`{"name":"Boomer","level":3,"stats":{"life":"30"},"tags":["a"]}`))
	require.NoError(t, err)

	assert.Equal(t, "Boomer", rec.String("name"))
	assert.Equal(t, json.Number("3"), rec.Get("level"))
	assert.Equal(t, "3", rec.String("level"))

	stats, ok := rec.Record("stats")
	require.True(t, ok)
	assert.Equal(t, "30", stats.String("life"))

	tags, ok := rec.List("tags")
	require.True(t, ok)
	assert.Len(t, tags, 1)
}

func TestDecodeRejectsNonObjects(t *testing.T) {
	_, err := record.Decode([]byte(`[1,2]`))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = record.Decode([]byte(`{"broken":`))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDecodeValueRejectsTrailingData(t *testing.T) {
	for _, raw := range []string{`[{"id":"x"}] }}garbage`, `{"a":1}{"b":2}`, `[] []`} {
		_, err := record.DecodeValue([]byte(raw))
		require.Error(t, err, raw)
		assert.True(t, errors.IsInvalidArgument(err), raw)
	}

	value, err := record.DecodeValue([]byte(" [1] \n\t"))
	require.NoError(t, err)
	assert.Len(t, value, 1)
}

func TestFirstSkipsNull(t *testing.T) {
	rec := record.Record{"titulo": nil, "nombre": "Bola de fuego"}

	v, ok := rec.First("title", "titulo", "nombre")
	require.True(t, ok)
	assert.Equal(t, "Bola de fuego", v)

	_, ok = rec.First("title")
	assert.False(t, ok)
	assert.False(t, rec.Has("titulo"))
}

func TestCloneIsShallowCopy(t *testing.T) {
	rec := record.Record{"name": "Boomer"}
	clone := rec.Clone()
	clone["name"] = "Other"

	assert.Equal(t, "Boomer", rec.String("name"))
	assert.Nil(t, record.Record(nil).Clone())
}

func TestFromStruct(t *testing.T) {
	type sample struct {
		Name  string `json:"name"`
		Level int    `json:"level"`
	}

	rec, err := record.FromStruct(sample{Name: "Boomer", Level: 2})
	require.NoError(t, err)
	assert.Equal(t, "Boomer", rec.String("name"))
	assert.Equal(t, "2", rec.String("level"))
}

func TestStringify(t *testing.T) {
	testCases := []struct {
		input  any
		want   string
		wantOK bool
	}{
		{input: "x", want: "x", wantOK: true},
		{input: 2.5, want: "2.5", wantOK: true},
		{input: float64(30), want: "30", wantOK: true},
		{input: 4, want: "4", wantOK: true},
		{input: true, want: "true", wantOK: true},
		{input: nil, wantOK: false},
		{input: []any{"a"}, wantOK: false},
	}

	for _, tc := range testCases {
		got, ok := record.Stringify(tc.input)
		assert.Equal(t, tc.wantOK, ok)
		assert.Equal(t, tc.want, got)
	}
}
