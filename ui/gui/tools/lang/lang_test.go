package lang_test

import (
	"testing"

	"blokus/ui/gui/tools/lang"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	lw, err := lang.NewGUILangWorker(lang.EN)
	require.NoError(t, err)
	assert.Equal(t, "Play", lw.T("menu.play"))
	assert.Equal(t, "no.such.key", lw.T("no.such.key"))

	require.NoError(t, lw.SetLang(lang.RU))
	assert.Equal(t, lang.RU, lw.GetLang())
	assert.Equal(t, "Играть", lw.T("menu.play"))
}

func TestDictionariesMatch(t *testing.T) {
	en, err := lang.NewGUILangWorker(lang.EN)
	require.NoError(t, err)
	ru, err := lang.NewGUILangWorker(lang.RU)
	require.NoError(t, err)
	for _, key := range []string{"menu.play", "menu.load", "menu.theme", "menu.exit", "play.help", "button.ok"} {
		assert.NotEqual(t, key, en.T(key))
		assert.NotEqual(t, key, ru.T(key))
	}
	assert.Equal(t, lang.RU, lang.LangFromString("ru"))
	assert.Equal(t, lang.EN, lang.LangFromString("de"))
}
