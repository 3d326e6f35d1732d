package classifier_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ananyaa0518/resQAI/internal/classifier"
	"github.com/ananyaa0518/resQAI/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClassifier(t *testing.T) *classifier.Classifier {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	return classifier.New(path, discardLogger())
}

func TestClassify_KnownCategories(t *testing.T) {
	t.Parallel()

	c := newClassifier(t)

	cases := []struct {
		text string
		want domain.Category
	}{
		{"Heavy flooding near the river bank area", domain.CategoryFlood},
		{"Massive fire with smoke and flames spreading", domain.CategoryFire},
		{"Strong earthquake tremors buildings shaking", domain.CategoryEarthquake},
		{"Two vehicles collision accident on the highway", domain.CategoryAccident},
	}

	for _, c2 := range cases {
		if got := c.Classify(c2.text); got != c2.want {
			t.Fatalf("text=%q: expected %q got %q", c2.text, c2.want, got)
		}
	}
}

func TestClassify_UnrecognizedTextFallsBack(t *testing.T) {
	t.Parallel()

	c := newClassifier(t)

	for _, text := range []string{
		"",
		"   ",
		"!!! ### $$$",
		"zzyzx qwfp arstneio xcvbnm",
	} {
		if got := c.Classify(text); got != domain.CategoryOther {
			t.Fatalf("text=%q: expected Other got %q", text, got)
		}
	}
}

func TestClassify_AlwaysReturnsKnownCategory(t *testing.T) {
	t.Parallel()

	c := newClassifier(t)

	texts := []string{
		"water water water",
		"help help help help",
		"the quick brown fox jumps over the lazy dog",
		"urgent danger situation unsafe",
	}
	for _, text := range texts {
		if got := c.Classify(text); !got.Valid() {
			t.Fatalf("text=%q: unknown category %q", text, got)
		}
	}
}

func TestClassify_PersistsArtifact(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "model.json")
	c := classifier.New(path, discardLogger())

	if got := c.Classify("Flash flood water rising fast"); got != domain.CategoryFlood {
		t.Fatalf("expected Flood got %q", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected artifact at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("artifact is empty")
	}

	// A fresh instance must load the artifact and agree.
	c2 := classifier.New(path, discardLogger())
	if got := c2.Classify("Flash flood water rising fast"); got != domain.CategoryFlood {
		t.Fatalf("reloaded model: expected Flood got %q", got)
	}
}

func TestClassify_CorruptArtifactRetrains(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c := classifier.New(path, discardLogger())
	if got := c.Classify("Building on fire flames everywhere"); got != domain.CategoryFire {
		t.Fatalf("expected Fire after retrain, got %q", got)
	}
}

func TestClassify_EmptyArtifactRetrains(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c := classifier.New(path, discardLogger())
	if got := c.Classify("River overflowing homes submerged"); got != domain.CategoryFlood {
		t.Fatalf("expected Flood after retrain, got %q", got)
	}
}
