package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io/fs"
	"path"
	"strings"
)

const workbookPart = "xl/workbook.xml"

// relationship is one entry of an OPC .rels part.
type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type relationshipList struct {
	Items []relationship `xml:"Relationship"`
}

type workbookSheetList struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

// ReadTextBoxes returns the text of every drawing shape in an xlsx package,
// keyed by sheet name. Shapes without text are skipped. A package without
// a readable workbook part yields no text boxes rather than an error.
func ReadTextBoxes(data []byte) (map[string][]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	result := make(map[string][]string)

	var wb workbookSheetList
	if err := decodePart(zr, workbookPart, &wb); err != nil {
		return result, nil
	}
	sheetTargets := make(map[string]string)
	for _, rel := range partRelationships(zr, workbookPart) {
		sheetTargets[rel.ID] = resolvePart(workbookPart, rel.Target)
	}

	for _, sheet := range wb.Sheets {
		sheetPart, ok := sheetTargets[sheet.RID]
		if !ok {
			continue
		}
		for _, rel := range partRelationships(zr, sheetPart) {
			if !strings.HasSuffix(strings.ToLower(rel.Type), "/drawing") {
				continue
			}
			drawing, err := fs.ReadFile(zr, resolvePart(sheetPart, rel.Target))
			if err != nil {
				continue
			}
			if texts := parseDrawingText(drawing); len(texts) > 0 {
				result[sheet.Name] = append(result[sheet.Name], texts...)
			}
		}
	}

	return result, nil
}

func decodePart(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}

// partRelationships reads the .rels part that belongs to part. Missing or
// malformed rels mean no relationships.
func partRelationships(fsys fs.FS, part string) []relationship {
	var rels relationshipList
	if err := decodePart(fsys, relsPart(part), &rels); err != nil {
		return nil
	}
	return rels.Items
}

// relsPart maps "xl/worksheets/sheet1.xml" to "xl/worksheets/_rels/sheet1.xml.rels".
func relsPart(part string) string {
	return path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
}

// resolvePart resolves a relationship target against the part that owns
// the relationship. Absolute targets are rooted at the package.
func resolvePart(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(source), target)
}

// parseDrawingText collects the concatenated a:t runs of each sp element.
func parseDrawingText(data []byte) []string {
	var texts []string

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sp" {
			if text := readShapeText(decoder); text != "" {
				texts = append(texts, text)
			}
		}
	}

	return texts
}

// readShapeText consumes tokens up to the end of the current sp element.
// Paragraphs are joined with a space.
func readShapeText(decoder *xml.Decoder) string {
	var paragraphs []string
	var current strings.Builder

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				var run struct {
					Text string `xml:",chardata"`
				}
				if err := decoder.DecodeElement(&run, &t); err == nil {
					current.WriteString(run.Text)
				}
				depth--
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "p" && current.Len() > 0 {
				paragraphs = append(paragraphs, strings.TrimSpace(current.String()))
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, strings.TrimSpace(current.String()))
	}

	return strings.TrimSpace(strings.Join(paragraphs, " "))
}
