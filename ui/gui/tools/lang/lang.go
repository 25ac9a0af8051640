package lang

import (
	"embed"
	"encoding/json"
)

//go:embed dict/*.json
var dicts embed.FS

type LangType int

const (
	EN LangType = iota
	RU
)

func LangFromString(s string) LangType {
	if s == "ru" {
		return RU
	}
	return EN
}

type GUILangWorker struct {
	lang LangType
	dict map[string]string
}

// create object LangWorker with the given lang
func NewGUILangWorker(l LangType) (*GUILangWorker, error) {
	lw := &GUILangWorker{}
	if err := lw.SetLang(l); err != nil {
		return nil, err
	}
	return lw, nil
}

func (lw *GUILangWorker) GetLang() LangType {
	return lw.lang
}

func (lw *GUILangWorker) SetLang(l LangType) error {
	data, err := dicts.ReadFile("dict/" + l.jsonName())
	if err != nil {
		return err
	}
	dict := make(map[string]string)
	if err := json.Unmarshal(data, &dict); err != nil {
		return err
	}
	lw.lang = l
	lw.dict = dict
	return nil
}

func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key // if key is not found
}

func (l LangType) jsonName() string {
	if l == RU {
		return "ru.json"
	}
	return "en.json"
}
