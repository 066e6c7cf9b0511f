package language

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllLanguagesCountAndOrder(t *testing.T) {
	all := AllLanguages()
	assert.Len(t, all, 75)

	tags := make([]string, len(all))
	for i, l := range all {
		tags[i] = l.String()
	}
	assert.True(t, sort.StringsAreSorted(tags), "languages must be in tag order")
}

func TestAllSpokenLanguagesExcludesLatin(t *testing.T) {
	spoken := AllSpokenLanguages()
	assert.Len(t, spoken, 74)
	assert.NotContains(t, spoken, Latin)
}

func TestIsoCodes(t *testing.T) {
	assert.Equal(t, "en", English.IsoCode639_1())
	assert.Equal(t, "eng", English.IsoCode639_3())
	assert.Equal(t, "zh", Chinese.IsoCode639_1())
	assert.Equal(t, "zho", Chinese.IsoCode639_3())
	assert.Equal(t, "nb", Bokmal.IsoCode639_1())
	assert.Equal(t, "nn", Nynorsk.IsoCode639_1())
	assert.Equal(t, "", Unknown.IsoCode639_1())
}

func TestIsoCodesUniqueAndComplete(t *testing.T) {
	seen1 := make(map[string]Language)
	seen3 := make(map[string]Language)
	for _, l := range AllLanguages() {
		iso1 := l.IsoCode639_1()
		iso3 := l.IsoCode639_3()
		require.Len(t, iso1, 2, "%s has bad 639-1 code %q", l, iso1)
		require.Len(t, iso3, 3, "%s has bad 639-3 code %q", l, iso3)
		_, dup1 := seen1[iso1]
		_, dup3 := seen3[iso3]
		require.False(t, dup1, "duplicate 639-1 code %q", iso1)
		require.False(t, dup3, "duplicate 639-3 code %q", iso3)
		seen1[iso1] = l
		seen3[iso3] = l
	}
}

func TestFromIsoCode(t *testing.T) {
	l, err := FromIsoCode639_1("DE")
	require.NoError(t, err)
	assert.Equal(t, German, l)

	l, err = FromIsoCode639_3("deu")
	require.NoError(t, err)
	assert.Equal(t, German, l)

	_, err = FromIsoCode639_1("xx")
	assert.Error(t, err)

	_, err = FromIsoCode639_3("xxx")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	l, err := Parse("german")
	require.NoError(t, err)
	assert.Equal(t, German, l)

	l, err = Parse("fr")
	require.NoError(t, err)
	assert.Equal(t, French, l)

	l, err = Parse("jpn")
	require.NoError(t, err)
	assert.Equal(t, Japanese, l)

	_, err = Parse("klingon")
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(German)
	require.NoError(t, err)
	assert.Equal(t, `"German"`, string(data))

	var l Language
	require.NoError(t, json.Unmarshal(data, &l))
	assert.Equal(t, German, l)

	require.NoError(t, json.Unmarshal([]byte(`"Unknown"`), &l))
	assert.Equal(t, Unknown, l)

	require.NoError(t, json.Unmarshal([]byte(`"fr"`), &l))
	assert.Equal(t, French, l)

	assert.Error(t, json.Unmarshal([]byte(`"klingon"`), &l))
}

func TestRoundTrip(t *testing.T) {
	for _, l := range AllLanguages() {
		got, err := FromIsoCode639_1(l.IsoCode639_1())
		require.NoError(t, err)
		assert.Equal(t, l, got)

		got, err = FromIsoCode639_3(l.IsoCode639_3())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
}
