package codegen

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okra-platform/sourcegen/internal/codegen/guard"
	"github.com/okra-platform/sourcegen/internal/filetype"
	"github.com/okra-platform/sourcegen/internal/genconfig"
)

// Test plan:
// 1. Each kind yields the expected file names in extension order
// 2. Indentation is applied to the final content
// 3. Header and source of a class agree on the include
// 4. Invalid and unsupported configs fail with sentinel errors
// 5. Exported wrappers expose the raw marker text

func classConfig() genconfig.Config {
	return genconfig.Config{
		Kind:             filetype.CppClass,
		BaseName:         "Foo",
		IncludeNamespace: true,
		NamespaceText:    "NS",
		UseTabs:          true,
		IndentWidth:      1,
	}
}

func TestGenerate_FileNamesPerKind(t *testing.T) {
	tests := []struct {
		kind filetype.Kind
		want []string
	}{
		{filetype.Java, []string{"Foo.java"}},
		{filetype.CppClass, []string{"Foo.h", "Foo.cpp"}},
		{filetype.CppHeader, []string{"Foo.h"}},
		{filetype.CppSource, []string{"Foo.cpp"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			cfg := classConfig()
			cfg.Kind = tt.kind

			files, err := Generate(cfg, Options{Guards: &guard.FixedSource{Values: []int{3}}})
			require.NoError(t, err)

			var names []string
			for _, f := range files {
				names = append(names, f.Name)
				assert.NotContains(t, string(f.Content), "$")
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestGenerate_ClassContent(t *testing.T) {
	// Test: Class output equals header and source generated separately, indented
	cfg := classConfig()
	files, err := Generate(cfg, Options{Guards: &guard.FixedSource{Values: []int{5}}})
	require.NoError(t, err)
	require.Len(t, files, 2)

	headerCfg := cfg
	headerCfg.Kind = filetype.CppHeader
	wantHeader, err := ApplyIndent(GenerateCppHeader(headerCfg, &guard.FixedSource{Values: []int{5}}), cfg)
	require.NoError(t, err)
	if diff := cmp.Diff(wantHeader, string(files[0].Content)); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	assert.Contains(t, string(files[0].Content), "\tFoo();")
	assert.Contains(t, string(files[0].Content), "\tvirtual ~Foo() ;")
	assert.Equal(t, ".h", files[0].Extension)
	assert.Equal(t, ".cpp", files[1].Extension)

	include := regexp.MustCompile(`#include "\./([^"]+)"`).FindStringSubmatch(string(files[1].Content))
	require.Len(t, include, 2)
	assert.Equal(t, files[0].Name, include[1])
}

func TestGenerate_Spaces(t *testing.T) {
	cfg := classConfig()
	cfg.Kind = filetype.CppHeader
	cfg.UseTabs = false
	cfg.IndentWidth = 4

	files, err := Generate(cfg, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(files[0].Content), "\n    Foo();\n")
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    genconfig.Config
		target error
	}{
		{"negative indent", genconfig.Config{Kind: filetype.Java, IndentWidth: -2}, genconfig.ErrInvalidConfig},
		{"none kind", genconfig.Config{Kind: filetype.None}, ErrUnsupportedKind},
		{"unknown kind", genconfig.Config{Kind: filetype.Kind(50)}, ErrUnsupportedKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := Generate(tt.cfg, Options{})
			assert.Nil(t, files)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestGenerate_EmptyBaseName(t *testing.T) {
	// Test: A blank name is not rejected
	files, err := Generate(genconfig.Config{Kind: filetype.CppClass}, Options{})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, ".h", files[0].Name)
	assert.Equal(t, ".cpp", files[1].Name)
}

func TestWrappers(t *testing.T) {
	cfg := genconfig.Config{
		Kind:             filetype.Java,
		BaseName:         "Bar",
		IncludeBaseClass: true,
		BaseClassText:    "Base",
		IncludeDocBlock:  true,
	}

	assert.True(t, strings.HasPrefix(GenerateDocBlock(cfg), "/**\n*\n*$@file Bar.java\n"))
	assert.Contains(t, GenerateJavaSource(cfg), "public class Bar extends Base  {")
	assert.Contains(t, GenerateCppSource(cfg), "Bar::~Bar() {")
	assert.Contains(t, GenerateCppHeader(cfg, &guard.FixedSource{}), "#define __BAR_0000000000000000_H__")
}
