package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	c := New("test")
	c.SetArgs(append([]string{"-s"}, args...))
	return c.Run()
}

func TestWrongArgCount(t *testing.T) {
	tests := [][]string{
		{"train", "a", "b", "c"},
		{"align", "a", "b"},
		{"evaluate", "a", "b", "c", "d"},
		{"evaluate", "a", "b", "c", "d", "e", "f"},
	}
	for _, args := range tests {
		if err := run(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestTrainAlignEvaluate(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"src.en":   "the house\nthe blue house\nthe flower\n",
		"tgt.fr":   "la maison\nla maison bleu\nla fleur\n",
		"gold.txt": "1 1 1 S\n1 2 2 S\n2 1 1 S\n2 3 2 S\n2 2 3 S\n3 1 1 S\n3 2 2 P\n",
		"gold.en":  "<s snum=1> the house </s>\n<s snum=2> the blue house </s>\n<s snum=3> the flower </s>\n",
		"gold.fr":  "<s snum=1> la maison </s>\n<s snum=2> la maison bleu </s>\n<s snum=3> la fleur </s>\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	path := func(name string) string { return filepath.Join(dir, name) }

	if err := run(t, "train", path("src.en"), path("tgt.fr"), path("probs.tsv"), path("pairs.txt")); err != nil {
		t.Fatal(err)
	}
	if err := run(t, "align", path("probs.tsv"), path("out.txt"), path("pairs.txt")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path("out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "1-0 2-2,1-0 2-3 3-2,1-0 2-2" {
		t.Errorf("alignments = %q", got)
	}

	err = run(t, "evaluate", "gold.txt", "gold.en", "gold.fr", path("probs.tsv"), path("gold_out.txt"),
		"--gold-folder", dir)
	if err != nil {
		t.Fatal(err)
	}
	data, err = os.ReadFile(path("gold_out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "1-0 2-2,") {
		t.Errorf("gold alignments = %q", data)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "wordalign.yaml")
	if err := os.WriteFile(cfg, []byte("train:\n  iterations: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	err := run(t, "--config", cfg, "train", "a", "b", "c", "d")
	if err == nil || !strings.Contains(err.Error(), "iterations") {
		t.Errorf("err = %v, want iterations validation error", err)
	}
}
