package seo

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeswerv/internal/domain"
)

func strPtr(s string) *string { return &s }

func createTestPage() domain.Page {
	return domain.Page{
		ID:       "pg1",
		Slug:     "spring-checklist",
		Title:    "Spring Home Checklist",
		Content:  "<h1>Spring</h1><p>Clean the gutters before the rains.</p><script>track()</script>",
		Sections: []domain.Section{{ID: "s1", Type: "hero", Content: "Hello"}},
	}
}

func TestEditorSetCallsOnChange(t *testing.T) {
	var got []domain.Page
	ed := NewMetaDataEditor(createTestPage(), func(p domain.Page) { got = append(got, p) })

	require.NoError(t, ed.Set(FieldMetaTitle, "Spring checklist | Home Swerv"))
	require.NoError(t, ed.Set(FieldOGImage, "  https://cdn.homeswerv.com/spring.png "))

	require.Len(t, got, 2)
	assert.Equal(t, "Spring checklist | Home Swerv", *got[1].MetaTitle)
	assert.Equal(t, "https://cdn.homeswerv.com/spring.png", *got[1].OGImage)
	assert.Nil(t, got[0].OGImage, "callback receives a snapshot")
}

func TestEditorRejectsFieldsOfOtherForm(t *testing.T) {
	ed := NewMetaDataEditor(createTestPage(), nil)
	assert.ErrorIs(t, ed.Set(FieldCustomJS, "alert(1)"), ErrUnknownField)

	pv := NewPreviewEditor(createTestPage(), nil)
	assert.ErrorIs(t, pv.Set(FieldMetaTitle, "x"), ErrUnknownField)
	assert.NoError(t, pv.Set(FieldCustomJS, "alert(1)"))
	assert.Equal(t, "alert(1)", *pv.Page().CustomJS)
}

func TestEditorEmptyValueClearsOptional(t *testing.T) {
	page := createTestPage()
	page.MetaKeywords = strPtr("gutters, spring")
	ed := NewMetaDataEditor(page, nil)

	require.NoError(t, ed.Set(FieldMetaKeywords, "  "))
	assert.Nil(t, ed.Page().MetaKeywords)
}

func TestEditorDoesNotAliasInput(t *testing.T) {
	page := createTestPage()
	ed := NewPreviewEditor(page, nil)
	require.NoError(t, ed.Set(FieldTitle, "Changed"))

	out := ed.Page()
	out.Sections[0].Content = "mutated"
	assert.Equal(t, "Spring Home Checklist", page.Title)
	assert.Equal(t, "Hello", ed.Page().Sections[0].Content)
}

func TestEditorBind(t *testing.T) {
	calls := 0
	ed := NewMetaDataEditor(createTestPage(), func(domain.Page) { calls++ })

	n := ed.Bind(url.Values{
		FieldMetaTitle:       {"Title"},
		FieldMetaDescription: {"Desc"},
		FieldCustomCSS:       {"body{}"},
	})
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, calls)

	want := createTestPage()
	want.MetaTitle = strPtr("Title")
	want.MetaDescription = strPtr("Desc")
	if diff := cmp.Diff(want, ed.Page()); diff != "" {
		t.Errorf("page mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckHints(t *testing.T) {
	page := createTestPage()
	hints := Check(page)
	require.Len(t, hints, 2)
	assert.Equal(t, FieldMetaTitle, hints[0].Field)
	assert.Equal(t, FieldMetaDescription, hints[1].Field)

	page.MetaTitle = strPtr(strings.Repeat("a", 61))
	page.MetaDescription = strPtr("ok")
	page.OGImage = strPtr("spring.png")
	hints = Check(page)
	require.Len(t, hints, 2)
	assert.Contains(t, hints[0].Message, "61 characters")
	assert.Equal(t, FieldOGImage, hints[1].Field)
}

func TestBuildSnippet(t *testing.T) {
	page := createTestPage()
	s := BuildSnippet(page, "https://www.homeswerv.co.uk")

	assert.Equal(t, "Spring Home Checklist", s.Title)
	assert.Equal(t, "Spring Clean the gutters before the rains.", s.Description)
	assert.Equal(t, "homeswerv.co.uk › p › spring-checklist", s.DisplayURL)

	page.MetaTitle = strPtr(strings.Repeat("x", 80))
	s = BuildSnippet(page, "not a url")
	assert.Equal(t, 60, len([]rune(s.Title)))
	assert.True(t, strings.HasSuffix(s.Title, "…"))
	assert.Equal(t, "/p/spring-checklist", s.DisplayURL)
}

func TestTextExcerpt(t *testing.T) {
	got := TextExcerpt("<p>He<b>llo</b>   world</p><ul><li>a</li><li>b</li></ul><style>p{}</style>")
	assert.Equal(t, "Hello world a b", got)
	assert.Empty(t, TextExcerpt(""))
}
