package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// backlogRow una línea del CSV: epic;story;criteria. Solo story es obligatoria.
type backlogRow struct {
	Line     int
	Epic     string
	Story    string
	Criteria string
}

// readRows lee el CSV separado por ';'. Con latin1 el contenido se decodifica desde ISO-8859-1
// (exportaciones de Excel). Una primera fila cuyo segundo campo sea "story" se trata como cabecera.
// Las filas sin story se omiten y se reportan en skipped.
func readRows(r io.Reader, latin1 bool) (rows []backlogRow, skipped []int, err error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// ParseError ya indica línea y columna.
			return nil, nil, fmt.Errorf("leer CSV: %w", err)
		}
		// Línea física donde empieza el registro; un campo entre comillas puede ocupar varias.
		line, _ := cr.FieldPos(0)
		if first && len(rec) > 1 && strings.EqualFold(strings.TrimSpace(rec[1]), "story") {
			continue
		}
		row := backlogRow{Line: line}
		row.Epic = field(rec, 0)
		row.Story = field(rec, 1)
		row.Criteria = field(rec, 2)
		if row.Story == "" {
			skipped = append(skipped, line)
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
