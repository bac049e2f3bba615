package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCookies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies-gotfriends.json")
	content := `[
		{"name": "session", "value": "abc", "domain": ".gotfriends.co.il", "path": "/", "expires": 1900000000, "httpOnly": true, "secure": true, "sameSite": "Lax"},
		{"name": "lang", "value": "he", "domain": "www.gotfriends.co.il"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cookies, err := LoadCookies(path)
	require.NoError(t, err)
	require.Len(t, cookies, 2)

	first := cookies[0]
	assert.Equal(t, "session", first.Name)
	assert.Equal(t, ".gotfriends.co.il", *first.Domain)
	assert.Equal(t, 1900000000.0, *first.Expires)
	assert.True(t, *first.HttpOnly)
	assert.True(t, *first.Secure)
	assert.Equal(t, playwright.SameSiteAttributeLax, first.SameSite)

	second := cookies[1]
	assert.Equal(t, "/", *second.Path)
	assert.Nil(t, second.Expires)
	assert.Nil(t, second.HttpOnly)
	assert.Nil(t, second.SameSite)
}

func TestLoadCookies_Errors(t *testing.T) {
	_, err := LoadCookies(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, os.IsNotExist(err))

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = LoadCookies(path)
	assert.Error(t, err)
}
