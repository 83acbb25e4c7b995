package argexpr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/getarg/internal/argtable"
	"github.com/zclconf/go-cty/cty"
)

func TestValue(t *testing.T) {
	t.Parallel()

	table := argtable.Parse([]string{"-VRI=1", "--bar", "-noqux"})

	val, err := Value(table)
	require.NoError(t, err)

	require.True(t, val.Type().Equals(cty.Map(cty.String)), "Type should be map(string)")
	require.True(t, val.Equals(cty.MapVal(map[string]cty.Value{
		"VRI": cty.StringVal("1"),
		"bar": cty.StringVal(""),
	})).True())
}

func TestValue_EmptyTable(t *testing.T) {
	t.Parallel()

	val, err := Value(argtable.Parse(nil))
	require.NoError(t, err)

	require.True(t, val.Type().Equals(cty.Map(cty.String)))
	require.Equal(t, 0, val.LengthInt())
}

func TestValue_NormalizationCollision(t *testing.T) {
	t.Parallel()

	// Precomposed and decomposed spellings are distinct flags to the parser.
	table := argtable.Parse([]string{"-caf\u00e9=composed", "-cafe\u0301=decomposed", "-v=1"})
	require.Equal(t, 3, table.Len())

	_, err := Value(table)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "collide")
}

func TestConvert(t *testing.T) {
	t.Parallel()

	table := argtable.Parse([]string{"-port=8333", "-debug=true", "-name=eleven"})

	port, err := Convert(table, "-port", cty.Number)
	require.NoError(t, err)
	assert.True(t, port.Equals(cty.NumberIntVal(8333)).True())

	debug, err := Convert(table, "debug", cty.Bool)
	require.NoError(t, err)
	assert.True(t, debug.True())

	missing, err := Convert(table, "-absent", cty.Number)
	require.NoError(t, err)
	assert.True(t, missing.IsNull())
	assert.True(t, missing.Type().Equals(cty.Number))

	_, err = Convert(table, "-name", cty.Number)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument -name")
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	out, err := MarshalJSON(argtable.Parse([]string{"--VRI=verbose", "-bar"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"-VRI":"verbose","-bar":""}`, string(out))

	out, err = MarshalJSON(argtable.Parse([]string{"-a=<b>&c"}))
	require.NoError(t, err)
	assert.Equal(t, `{"-a":"<b>&c"}`, string(out))

	out, err = MarshalJSON(argtable.Parse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}

func TestMarshalJSON_KeepsUnnormalizedKeys(t *testing.T) {
	t.Parallel()

	table := argtable.Parse([]string{"-caf\u00e9=composed", "-cafe\u0301=decomposed", "-v=caf\u00e9"})

	out, err := MarshalJSON(table)
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, table.Map(), got)
	assert.Len(t, got, 3)
}

func TestRender(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		val  cty.Value
		want string
	}{
		{name: "string", val: cty.StringVal("verbose"), want: "verbose"},
		{name: "integer", val: cty.NumberIntVal(11), want: "11"},
		{name: "fraction", val: cty.NumberFloatVal(1.5), want: "1.5"},
		{name: "true", val: cty.True, want: "true"},
		{name: "false", val: cty.False, want: "false"},
		{name: "null", val: cty.NullVal(cty.String), want: "null"},
		{name: "list", val: cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}), want: `["a","b"]`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tc.val)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRender_Unknown(t *testing.T) {
	t.Parallel()

	_, err := Render(cty.UnknownVal(cty.String))
	require.Error(t, err)
}
