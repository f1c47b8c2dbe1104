package cmd

import (
	"bytes"
	"encoding/binary"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuigiBlood/dwarfone/internal/logger"
	"github.com/LuigiBlood/dwarfone/internal/testelf"
)

// compileUnit is a big endian compile unit followed by a terminator.
var compileUnit = []byte{
	0x00, 0x00, 0x00, 0x0e, 0x00, 0x11, 0x01, 0x36,
	0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x04,
}

func writeObject(t *testing.T, sections ...testelf.Section) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.o")
	require.NoError(t, os.WriteFile(path, testelf.Build(binary.BigEndian, sections...), 0o644))
	return path
}

func set(t *testing.T, key string, v interface{}) {
	viper.Set(key, v)
	t.Cleanup(func() { viper.Set(key, nil) })
}

func TestDumpFile(t *testing.T) {
	set(t, keyNoColor, true)
	path := writeObject(t, testelf.Section{Name: ".debug", Data: compileUnit})

	var out bytes.Buffer
	require.NoError(t, dumpFile(&out, path))
	assert.Equal(t,
		"DWARF v1 dump\n"+
			"\n"+
			".debug File Offset: 0x34\n"+
			".debug Size: 0x10\n"+
			"\n"+
			"0: <14> compile_unit\n"+
			"        language(C)\n"+
			"c: <4>\n",
		out.String())
}

func TestDumpFileSections(t *testing.T) {
	set(t, keyNoColor, true)
	set(t, keySections, true)
	path := writeObject(t, testelf.Section{Name: ".debug", Data: compileUnit})

	var out bytes.Buffer
	require.NoError(t, dumpFile(&out, path))
	assert.Contains(t, out.String(), " - Offset: 0x0\n.debug - Offset: 0x34\n.shstrtab - Offset: 0x44\nDWARF v1 dump\n")
}

func TestDumpFileReportsErrors(t *testing.T) {
	set(t, keyNoColor, true)

	notELF := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(notELF, []byte("plain text, not an object"), 0o644))

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.o"), "error: read "},
		{"not an object", notELF, "error: " + notELF + ": not an ELF file"},
		{
			"no debug section",
			writeObject(t, testelf.Section{Name: ".text", Data: compileUnit}),
			"error: no .debug section",
		},
		{
			"truncated debug section",
			writeObject(t, testelf.Section{Name: ".debug", Data: compileUnit[:14]}),
			"error: unexpected end of debug section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.NoError(t, dumpFile(&out, tt.path))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestDumpFileLogsHeuristics(t *testing.T) {
	set(t, keyNoColor, true)
	set(t, keyLogLevel, "debug")

	var logs bytes.Buffer
	logger.SetOutput(&logs, false)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr, false)
		logger.SetLevel(slog.LevelWarn)
	})

	// tag written little endian in a big endian object
	section := append([]byte{}, compileUnit...)
	section[4], section[5] = 0x11, 0x00
	path := writeObject(t, testelf.Section{Name: ".debug", Data: section})

	var out bytes.Buffer
	require.NoError(t, dumpFile(&out, path))
	assert.Contains(t, out.String(), "0: <14> compile_unit\n")
	assert.Contains(t, logs.String(), "tag byte swapped")
	assert.Contains(t, logs.String(), "file="+path)
}

func TestExecute(t *testing.T) {
	path := writeObject(t, testelf.Section{Name: ".debug", Data: compileUnit})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	rootCmd.SetArgs([]string{})
	require.NoError(t, rootCmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), banner+"\nUsage:"), out.String())
	assert.NotContains(t, out.String(), "DWARF v1 dump")

	out.Reset()
	rootCmd.SetArgs([]string{"--no-color", "--enable-quirks", path})
	require.NoError(t, rootCmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), banner+"\nDWARF v1 dump\n"), out.String())
	assert.Contains(t, out.String(), "        language(C)\n")
	assert.True(t, viper.GetBool(keyEnableQuirks))

	rootCmd.SetArgs([]string{path, path})
	assert.Error(t, rootCmd.Execute())
}

func TestFlagsAreBound(t *testing.T) {
	for _, key := range []string{keyEnableQuirks, keyLogLevel, keyNoColor, keySections, keyInteractive} {
		require.NotNil(t, rootCmd.Flags().Lookup(key), key)
	}
	assert.Equal(t, "warn", viper.GetString(keyLogLevel))
	assert.False(t, viper.GetBool(keySections))
}
