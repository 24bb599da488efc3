package docblock

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okra-platform/sourcegen/internal/codegen/writer"
	"github.com/okra-platform/sourcegen/internal/filetype"
	"github.com/okra-platform/sourcegen/internal/genconfig"
)

func fullConfig() genconfig.Config {
	return genconfig.Config{
		Kind:             filetype.CppHeader,
		BaseName:         "Foo",
		IncludeDocBlock:  true,
		IncludeDate:      true,
		IncludeAuthor:    true,
		IncludeCopyright: true,
		IncludeLicense:   true,
		AuthorText:       "Ada",
		CopyrightText:    "Copyright (c) Ada",
		LicenseText:      "MIT License\nDo what you like.",
		CurrentDate:      "10/17/2026",
	}
}

func TestGenerate_Disabled(t *testing.T) {
	// Test: No doc block when disabled, regardless of sub-flags
	cfg := fullConfig()
	cfg.IncludeDocBlock = false

	assert.Equal(t, "", Generate(cfg))
}

func TestGenerate_Full(t *testing.T) {
	// Test: Every line in file, date, author, copyright, license order
	expected := "/**\n" +
		"*\n" +
		"*$@file Foo.h\n" +
		"*$@date 10/17/2026\n" +
		"*$@author Ada\n" +
		"*$@Copyright 2026 Copyright (c) Ada\n" +
		"*\n" +
		"*$MIT License\n" +
		"*$Do what you like.\n" +
		"*\n" +
		"*/\n"

	assert.Equal(t, expected, Generate(fullConfig()))
}

func TestGenerate_OptionalLines(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*genconfig.Config)
		absent  []string
		present []string
	}{
		{
			name:    "no date",
			modify:  func(c *genconfig.Config) { c.IncludeDate = false },
			absent:  []string{"@date"},
			present: []string{"@file", "@author", "@Copyright"},
		},
		{
			name:    "no author",
			modify:  func(c *genconfig.Config) { c.IncludeAuthor = false },
			absent:  []string{"@author"},
			present: []string{"@date", "@Copyright"},
		},
		{
			name:    "no copyright",
			modify:  func(c *genconfig.Config) { c.IncludeCopyright = false },
			absent:  []string{"@Copyright"},
			present: []string{"@author"},
		},
		{
			name:    "no license",
			modify:  func(c *genconfig.Config) { c.IncludeLicense = false },
			absent:  []string{"MIT License"},
			present: []string{"@Copyright"},
		},
		{
			name:   "empty license text",
			modify: func(c *genconfig.Config) { c.LicenseText = "" },
			absent: []string{"MIT License"},
		},
		{
			name:    "java file name",
			modify:  func(c *genconfig.Config) { c.Kind = filetype.Java },
			present: []string{"@file Foo.java"},
		},
		{
			name:    "class kind uses header name",
			modify:  func(c *genconfig.Config) { c.Kind = filetype.CppClass },
			present: []string{"@file Foo.h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fullConfig()
			tt.modify(&cfg)
			out := Generate(cfg)
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
			for _, s := range tt.present {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestGenerate_LineOrder(t *testing.T) {
	// Test: file < date < author < copyright
	out := Generate(fullConfig())
	idx := []int{
		strings.Index(out, "@file"),
		strings.Index(out, "@date"),
		strings.Index(out, "@author"),
		strings.Index(out, "@Copyright"),
	}
	for i := 1; i < len(idx); i++ {
		assert.Less(t, idx[i-1], idx[i])
	}
}

func TestFileName_NoneKind(t *testing.T) {
	assert.Equal(t, "Foo", FileName(genconfig.Config{BaseName: "Foo"}))
}

func TestWriteClass(t *testing.T) {
	w := writer.NewWriter()
	WriteClass(w, "Foo")
	assert.Equal(t, "/**\n*$@class Foo\n*$@brief\n*\n*/\n", w.String())
}
