// Package seo implements the admin page editors: the metadata editor, the
// page preview form and the search-result snippet shown next to them.
package seo

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"homeswerv/internal/domain"
)

// ErrUnknownField indicates a field that the editor does not control.
var ErrUnknownField = errors.New("unknown field")

// Field names posted by the editor forms.
const (
	FieldMetaTitle       = "meta_title"
	FieldMetaDescription = "meta_description"
	FieldMetaKeywords    = "meta_keywords"
	FieldOGImage         = "og_image"

	FieldTitle        = "title"
	FieldContent      = "content"
	FieldCustomCSS    = "custom_css"
	FieldCustomJS     = "custom_js"
	FieldTrackingCode = "tracking_code"
)

// MetaFields are the inputs of the metadata editor, PreviewFields those of the page preview form.
var (
	MetaFields    = []string{FieldMetaTitle, FieldMetaDescription, FieldMetaKeywords, FieldOGImage}
	PreviewFields = []string{FieldTitle, FieldContent, FieldCustomCSS, FieldCustomJS, FieldTrackingCode}
)

// Editor binds a set of form fields to a page. Every accepted change is
// reported to OnChange with a copy of the updated page.
type Editor struct {
	page     domain.Page
	fields   map[string]bool
	onChange func(domain.Page)
}

// NewMetaDataEditor edits the SEO metadata of page.
func NewMetaDataEditor(page domain.Page, onChange func(domain.Page)) *Editor {
	return newEditor(page, MetaFields, onChange)
}

// NewPreviewEditor edits the title, body and injected code of page.
func NewPreviewEditor(page domain.Page, onChange func(domain.Page)) *Editor {
	return newEditor(page, PreviewFields, onChange)
}

func newEditor(page domain.Page, fields []string, onChange func(domain.Page)) *Editor {
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return &Editor{page: page.Clone(), fields: set, onChange: onChange}
}

// Page returns a copy of the page as edited so far.
func (e *Editor) Page() domain.Page {
	return e.page.Clone()
}

// Set updates one field. Optional fields are cleared by an empty value.
func (e *Editor) Set(field, value string) error {
	if !e.fields[field] {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	switch field {
	case FieldMetaTitle:
		e.page.MetaTitle = optional(value)
	case FieldMetaDescription:
		e.page.MetaDescription = optional(value)
	case FieldMetaKeywords:
		e.page.MetaKeywords = optional(value)
	case FieldOGImage:
		e.page.OGImage = optional(strings.TrimSpace(value))
	case FieldTitle:
		e.page.Title = value
	case FieldContent:
		e.page.Content = value
	case FieldCustomCSS:
		e.page.CustomCSS = optional(value)
	case FieldCustomJS:
		e.page.CustomJS = optional(value)
	case FieldTrackingCode:
		e.page.TrackingCode = optional(value)
	}
	if e.onChange != nil {
		e.onChange(e.page.Clone())
	}
	return nil
}

// Bind applies every controlled field present in form. Fields the editor does
// not control are ignored so one form post can carry both editors.
func (e *Editor) Bind(form url.Values) int {
	applied := 0
	for field := range e.fields {
		vals, ok := form[field]
		if !ok {
			continue
		}
		value := ""
		if len(vals) > 0 {
			value = vals[0]
		}
		if err := e.Set(field, value); err == nil {
			applied++
		}
	}
	return applied
}

func optional(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
