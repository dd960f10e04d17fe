package project

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyPal/Espresso/util"
)

func TestCreateDefault(t *testing.T) {
	var c EspConf
	c.CreateDefault("brew")
	assert.Equal(t, "brew", c.Name)
	assert.Equal(t, "1.0.0", c.Version)
	assert.Equal(t, "src/main.espr", c.Main)
	assert.Equal(t, "src", c.SourceDir)

	c.CreateDefault(".")
	assert.Equal(t, "NewProject", c.Name)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	var c EspConf
	c.CreateDefault("roundtrip")
	c.Author = "someone"

	require.NoError(t, c.Save(filepath.Join(dir, FileName), true))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestSaveRespectsDecline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("name: keepme\n"), 0644))

	orig := util.Default
	util.Default = util.NewPrompter(strings.NewReader("n\n"), io.Discard)
	defer func() { util.Default = orig }()

	var c EspConf
	c.CreateDefault("clobber")
	require.NoError(t, c.Save(path, false))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "keepme", got.Name)
}

func TestSaveOverwritesOnConfirm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("name: old\n"), 0644))

	orig := util.Default
	util.Default = util.NewPrompter(strings.NewReader("y\n"), io.Discard)
	defer func() { util.Default = orig }()

	var c EspConf
	c.CreateDefault("new")
	require.NoError(t, c.Save(path, false))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("name: [unclosed\n"), 0644))
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FileName)
}
