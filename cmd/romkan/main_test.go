package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunConvertsArguments(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"sushi", "Ra-menn"}, strings.NewReader(""), &out); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "すし\nらーめん\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunReadsStdin(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("ko-hi- wo kudasai\nkonnpyu-ta-!\n")
	if err := run([]string{"--katakana"}, in, &out); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "コーヒー ヲ クダサイ\nコンピューター\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunCheck(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--check", "がっこう", "gakkou"}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("expected match, got %v (%s)", err, out.String())
	}
	out.Reset()
	if err := run([]string{"--check", "がっこう", "gakou"}, strings.NewReader(""), &out); err == nil {
		t.Fatalf("expected mismatch error, output %q", out.String())
	}
	if !strings.Contains(out.String(), "mismatch") {
		t.Fatalf("expected mismatch report, got %q", out.String())
	}
}

func TestRunHint(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--hint", "きょうと", "まっちゃ"}, strings.NewReader(""), &out); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "kyouto\nmaccha\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if err := run([]string{"--hint", "漢字"}, strings.NewReader(""), &out); err == nil {
		t.Fatalf("expected error for kanji")
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--nope"}, strings.NewReader(""), &out); err == nil {
		t.Fatalf("expected flag error")
	}
}

func TestRunWithTableFile(t *testing.T) {
	def := `% tiny table
\message{tiny}
\gemination{ッ k}
\syllables{
ka  カ
ki  キ
nn  ン
}
`
	file := filepath.Join(t.TempDir(), "tiny.kana")
	if err := os.WriteFile(file, []byte(def), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := run([]string{"--table", file, "kakki", "kinn"}, strings.NewReader(""), &out); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "カッキ\nキン\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if err := run([]string{"--table", filepath.Join(t.TempDir(), "missing.kana"), "ka"}, strings.NewReader(""), &out); err == nil {
		t.Fatalf("expected error for missing table file")
	}
}

func TestRunWithTracing(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--trace", "debug", "kyouto"}, strings.NewReader(""), &out); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "きょうと\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
