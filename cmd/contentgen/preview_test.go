package main

import (
	"bytes"
	"testing"
)

func TestWriteTreeCollapsesSingleChildDirs(t *testing.T) {
	entries := []string{
		"subjects.json",
		"01/",
		"01/assets/",
		"01/assets/data/",
		"01/index.html",
		"01/assets/data/data.json",
		"02/",
		"02/assets/",
		"02/assets/data/",
		"02/index.html",
		"02/assets/data/data.json",
	}
	var buf bytes.Buffer
	writeTree(&buf, buildTree("PY101", entries))

	want := "PY101/\n" +
		"├── subjects.json\n" +
		"├── 01/\n" +
		"│   ├── assets/data/data.json\n" +
		"│   └── index.html\n" +
		"└── 02/\n" +
		"    ├── assets/data/data.json\n" +
		"    └── index.html\n"
	if buf.String() != want {
		t.Fatalf("tree mismatch\n got:\n%s\nwant:\n%s", buf.String(), want)
	}
}
