package nonogram

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Header is the XML declaration written before every level file.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`

type xmlDocument struct {
	XMLName   xml.Name     `xml:"FreeNono"`
	Nonograms xmlNonograms `xml:"Nonograms"`
}

type xmlNonograms struct {
	Items []xmlNonogram `xml:"Nonogram"`
}

// xmlNonogram fixes the attribute order of the written file.
type xmlNonogram struct {
	Desc       string   `xml:"desc,attr"`
	Difficulty int      `xml:"difficulty,attr"`
	ID         string   `xml:"id,attr"`
	Name       string   `xml:"name,attr"`
	Height     int      `xml:"height,attr"`
	Width      int      `xml:"width,attr"`
	Lines      []string `xml:"line"`
}

// Encode writes the given nonograms as one FreeNono XML document.
func Encode(w io.Writer, nonograms ...*Nonogram) error {
	doc := xmlDocument{}
	for _, n := range nonograms {
		item := xmlNonogram{
			Desc:       n.Description,
			Difficulty: n.Difficulty,
			ID:         n.ID,
			Name:       n.Name,
			Height:     n.Height,
			Width:      n.Width,
			Lines:      make([]string, n.Height),
		}
		for y := 0; y < n.Height; y++ {
			item.Lines[y] = n.Line(y)
		}
		doc.Nonograms.Items = append(doc.Nonograms.Items, item)
	}

	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return fmt.Errorf("failed to write xml header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode nonogram: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode nonogram: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Decode reads all nonograms from a FreeNono XML document.
//
// Every level must have exactly Height <line> elements of Width tokens each,
// and every token must be a single "x" or "_".
func Decode(r io.Reader) ([]*Nonogram, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse nonogram file: %w", err)
	}

	result := make([]*Nonogram, 0, len(doc.Nonograms.Items))
	for _, item := range doc.Nonograms.Items {
		n, err := New(item.Name, item.Width, item.Height)
		if err != nil {
			return nil, fmt.Errorf("nonogram %q: %w", item.Name, err)
		}
		n.Description = item.Desc
		n.ID = item.ID
		n.Difficulty = item.Difficulty

		if len(item.Lines) != item.Height {
			return nil, fmt.Errorf("nonogram %q: has %d lines, want %d", item.Name, len(item.Lines), item.Height)
		}
		for y, text := range item.Lines {
			row, err := parseLine(text, item.Width)
			if err != nil {
				return nil, fmt.Errorf("nonogram %q line %d: %w", item.Name, y+1, err)
			}
			n.Cells[y] = row
		}
		result = append(result, n)
	}
	return result, nil
}
