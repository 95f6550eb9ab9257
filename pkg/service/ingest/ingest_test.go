package ingest_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/revisor-lab/revisor/pkg/service/ingest"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]string{
		{"control", "status"},
		{"Access review", "compliant"},
		{"Backup test", "non-compliant"},
	}
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			gt.NoError(t, err)
			gt.NoError(t, f.SetCellValue(sheet, name, cell))
		}
	}

	var buf bytes.Buffer
	gt.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestProcessWorkbook(t *testing.T) {
	svc := ingest.New()
	result := svc.Process([]ingest.File{
		{Name: "controls.xlsx", Data: buildWorkbook(t)},
	})

	gt.Number(t, len(result.Errors)).Equal(0)
	gt.Number(t, len(result.Tables)).Equal(1)

	table := result.Tables[0]
	gt.Value(t, table.Headers[0]).Equal("control")
	gt.Number(t, len(table.Rows)).Equal(2)
	gt.Value(t, table.Rows[0][0]).Equal("Access review")
}

func TestProcessDelimited(t *testing.T) {
	svc := ingest.New()
	result := svc.Process([]ingest.File{
		{Name: "findings.csv", Data: []byte("id,severity\n1,HIGH\n2,LOW\n")},
		{Name: "items.tsv", Data: []byte("item\tstate\nLogs\tok\n")},
	})

	gt.Number(t, len(result.Errors)).Equal(0)
	gt.Number(t, len(result.Tables)).Equal(2)
	gt.Number(t, len(result.Tables[0].Rows)).Equal(2)
	gt.Value(t, result.Tables[1].Rows[0][0]).Equal("Logs")
}

func TestProcessJSONAndText(t *testing.T) {
	svc := ingest.New()
	result := svc.Process([]ingest.File{
		{Name: "records.json", Data: []byte(`[{"name":"fw-01","zone":"dmz"},{"name":"fw-02"}]`)},
		{Name: "notes.txt", Data: []byte("first note\n\nsecond note\n")},
	})

	gt.Number(t, len(result.Errors)).Equal(0)

	jsonTable := result.Tables[0]
	gt.Value(t, jsonTable.Headers).Equal([]string{"name", "zone"})
	gt.Value(t, jsonTable.Rows[1]).Equal([]string{"fw-02", ""})

	textTable := result.Tables[1]
	gt.Value(t, textTable.Headers).Equal([]string{"text"})
	gt.Number(t, len(textTable.Rows)).Equal(2)
}

func TestProcessRejections(t *testing.T) {
	svc := ingest.New()
	oversized := make([]byte, ingest.MaxFileSize+1)
	result := svc.Process([]ingest.File{
		{Name: "huge.csv", Data: oversized},
		{Name: "script.exe", Data: []byte("MZ")},
		{Name: "broken.json", Data: []byte(`{"not":"an array"}`)},
		{Name: "ok.csv", Data: []byte("a,b\n1,2\n")},
	})

	// Bad files never fail the batch.
	gt.Number(t, len(result.Errors)).Equal(3)
	gt.Number(t, len(result.Tables)).Equal(1)
	gt.Value(t, result.Tables[0].Source).Equal("ok.csv")
}

func TestProcessBinaryDocuments(t *testing.T) {
	svc := ingest.New()
	result := svc.Process([]ingest.File{
		{Name: "evidence.pdf", Data: []byte("%PDF-1.7")},
		{Name: "memo.docx", Data: []byte("PK")},
	})

	gt.Number(t, len(result.Errors)).Equal(0)
	gt.Number(t, len(result.Tables)).Equal(2)
	for _, table := range result.Tables {
		gt.Number(t, len(table.Rows)).Equal(0)
		gt.Value(t, table.Note).Equal("no extractable rows for this format")
	}
}

func TestConsolidatedTable(t *testing.T) {
	svc := ingest.New()
	result := svc.Process([]ingest.File{
		{Name: "a.csv", Data: []byte("x,y\n1,2\n")},
		{Name: "b.csv", Data: []byte("y,z\n3,4\n")},
	})

	merged := result.Consolidated
	gt.Value(t, merged.Headers).Equal([]string{"source", "x", "y", "z"})
	gt.Number(t, len(merged.Rows)).Equal(2)
	gt.Value(t, merged.Rows[0]).Equal([]string{"a.csv", "1", "2", ""})
	gt.Value(t, merged.Rows[1]).Equal([]string{"b.csv", "", "3", "4"})
}
