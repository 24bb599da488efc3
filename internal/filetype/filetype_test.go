package filetype

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"java", Java, false},
		{"Java", Java, false},
		{"cpp-class", CppClass, false},
		{"C++ Class", CppClass, false},
		{"c++ header", CppHeader, false},
		{" cpp-source ", CppSource, false},
		{"none", None, false},
		{"rust", None, true},
		{"", None, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "cpp-header", CppHeader.String())
	assert.Equal(t, "kind(12)", Kind(12).String())
}

func TestKind_TextEncoding(t *testing.T) {
	// Test: Kinds are stored by name inside JSON documents
	type doc struct {
		Kind Kind `json:"kind"`
	}

	data, err := json.Marshal(doc{Kind: CppSource})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"cpp-source"}`, string(data))

	var got doc
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"C++ Class"}`), &got))
	assert.Equal(t, CppClass, got.Kind)

	err = json.Unmarshal([]byte(`{"kind":"cobol"}`), &got)
	assert.Error(t, err)

	_, err = Kind(77).MarshalText()
	assert.Error(t, err)
}

func TestNormalizeExtension(t *testing.T) {
	assert.Equal(t, ".cpp", NormalizeExtension("CPP"))
	assert.Equal(t, ".h", NormalizeExtension(" .H "))
	assert.Equal(t, "", NormalizeExtension("  "))
}
