package extract

import "testing"

func TestDecodeContentStream(t *testing.T) {
	stream := "BT\n/F1 12 Tf\n(Executive Summary) Tj\n0 -14 Td\n(Revenue\\: \\$2M) Tj\nET\n"
	got := decodeContentStream([]byte(stream))
	want := "Executive Summary\nRevenue: $2M"
	if got != want {
		t.Errorf("decodeContentStream = %q, want %q", got, want)
	}
}

func TestDecodePDFLiteral(t *testing.T) {
	cases := []struct {
		raw, want string
	}{
		{`plain`, "plain"},
		{`a\(b\)c`, "a(b)c"},
		{`line\nbreak`, "line\nbreak"},
		{`\101BC`, "ABC"}, // octal escape
	}
	for _, tc := range cases {
		if got := decodePDFLiteral([]byte(tc.raw)); got != tc.want {
			t.Errorf("decodePDFLiteral(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestDetectAlignedTables(t *testing.T) {
	page := "Quarterly Results\n" +
		"Metric  Q1  Q2\n" +
		"Revenue  100  200\n" +
		"Costs  80  120\n" +
		"Margin  20  80\n" +
		"Closing remarks follow here."

	tables := detectAlignedTables(page)
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if tables[0].RowCount != 4 || tables[0].ColumnCount != 3 {
		t.Errorf("table %dx%d, want 4x3", tables[0].RowCount, tables[0].ColumnCount)
	}
	if len(tables[0].Preview) != 3 {
		t.Errorf("preview rows = %d, want capped at 3", len(tables[0].Preview))
	}
}

func TestDetectAlignedTablesIgnoresShortRuns(t *testing.T) {
	page := "Name  Value\nRevenue  100\nA closing sentence."
	if tables := detectAlignedTables(page); len(tables) != 0 {
		t.Errorf("two aligned lines should not form a table, got %+v", tables)
	}
}
