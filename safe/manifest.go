package safe

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// ManifestFilename is the name of the XFDU manifest within a SAFE archive
const ManifestFilename = "manifest.safe"

// Manifest is a parsed manifest.safe document with path-query access to
// the acquisition, platform, orbit and processing metadata sections
type Manifest struct {
	doc *etree.Document
}

// OpenManifest locates and parses the manifest within a granule directory
func OpenManifest(granulePath string) (*Manifest, error) {
	doc := etree.NewDocument()
	manifestPath := filepath.Join(granulePath, ManifestFilename)
	if err := doc.ReadFromFile(manifestPath); err != nil {
		return nil, fmt.Errorf("Could not read %s: %v", manifestPath, err)
	}
	return &Manifest{doc: doc}, nil
}

// ParseManifest parses manifest XML from a reader
func ParseManifest(r io.Reader) (*Manifest, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	return &Manifest{doc: doc}, nil
}

// FindText returns the text of the first element matching the path, or ""
func (m *Manifest) FindText(xmlPath string) string {
	element := m.doc.FindElement(xmlPath)
	if element == nil {
		return ""
	}
	return strings.TrimSpace(element.Text())
}

// FindTextAll returns the text of every element matching the path
func (m *Manifest) FindTextAll(xmlPath string) []string {
	elements := m.doc.FindElements(xmlPath)
	texts := make([]string, 0, len(elements))
	for _, element := range elements {
		texts = append(texts, strings.TrimSpace(element.Text()))
	}
	return texts
}

// FindAttr returns the named attribute of the first element matching the
// path, or ""
func (m *Manifest) FindAttr(attr, xmlPath string) string {
	element := m.doc.FindElement(xmlPath)
	if element == nil {
		return ""
	}
	return element.SelectAttrValue(attr, "")
}

// RequireText is FindText that errors when the element is missing, for
// fields the output schema cannot do without
func (m *Manifest) RequireText(xmlPath string) (string, error) {
	text := m.FindText(xmlPath)
	if text == "" {
		return "", fmt.Errorf("Manifest is missing required element: %s", xmlPath)
	}
	return text, nil
}

// FileHrefs returns the href of every data object file location in the
// manifest, normalized to be relative to the granule root
func (m *Manifest) FileHrefs() []string {
	locations := m.doc.FindElements("//dataObjectSection/dataObject/byteStream/fileLocation")
	hrefs := make([]string, 0, len(locations))
	for _, location := range locations {
		href := location.SelectAttrValue("href", "")
		if href == "" {
			continue
		}
		hrefs = append(hrefs, strings.TrimPrefix(href, "./"))
	}
	return hrefs
}
