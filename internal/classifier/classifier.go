package classifier

import (
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/ananyaa0518/resQAI/internal/domain"
)

// Classifier assigns a disaster category to free-form report text using
// a multinomial naive Bayes model over unigram and bigram features. The
// model is trained once per process on the first call and cached on
// disk as a JSON artifact; later processes load the artifact instead of
// retraining. Classify never returns an error: any internal fault
// degrades to domain.CategoryOther.
type Classifier struct {
	path   string
	logger *slog.Logger

	once  sync.Once
	model *model
}

type model struct {
	DocsPerClass   map[domain.Category]int                `json:"docs_per_class"`
	TokenCounts    map[domain.Category]map[string]float64 `json:"token_counts"`
	TotalPerClass  map[domain.Category]float64            `json:"total_per_class"`
	VocabularySize int                                    `json:"vocabulary_size"`
	TotalDocs      int                                    `json:"total_docs"`
}

func New(path string, logger *slog.Logger) *Classifier {
	return &Classifier{path: path, logger: logger}
}

func (c *Classifier) Classify(text string) (category domain.Category) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("classifier panic recovered", slog.Any("panic", r))
			category = domain.CategoryOther
		}
	}()

	c.once.Do(c.build)

	if c.model == nil {
		return domain.CategoryOther
	}
	return c.model.predict(text)
}

func (c *Classifier) build() {
	if m, err := loadModel(c.path); err == nil {
		c.logger.Info("classifier model loaded", slog.String("path", c.path))
		c.model = m
		return
	} else if !os.IsNotExist(err) {
		c.logger.Warn("classifier artifact unusable, retraining",
			slog.String("path", c.path),
			slog.Any("error", err),
		)
	}

	c.model = train(trainingData)
	if err := saveModel(c.path, c.model); err != nil {
		c.logger.Warn("classifier artifact save failed",
			slog.String("path", c.path),
			slog.Any("error", err),
		)
	} else {
		c.logger.Info("classifier model trained and cached", slog.String("path", c.path))
	}
}

func loadModel(path string) (*model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.TotalDocs == 0 || m.VocabularySize == 0 || len(m.TokenCounts) == 0 {
		return nil, errEmptyModel
	}
	return &m, nil
}

func saveModel(path string, m *model) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func train(samples []sample) *model {
	m := &model{
		DocsPerClass:  make(map[domain.Category]int),
		TokenCounts:   make(map[domain.Category]map[string]float64),
		TotalPerClass: make(map[domain.Category]float64),
	}
	vocab := make(map[string]struct{})

	for _, s := range samples {
		m.DocsPerClass[s.label]++
		m.TotalDocs++
		if m.TokenCounts[s.label] == nil {
			m.TokenCounts[s.label] = make(map[string]float64)
		}
		for _, tok := range features(s.text) {
			m.TokenCounts[s.label][tok]++
			m.TotalPerClass[s.label]++
			vocab[tok] = struct{}{}
		}
	}
	m.VocabularySize = len(vocab)
	return m
}

func (m *model) predict(text string) domain.Category {
	toks := features(text)
	if len(toks) == 0 {
		return domain.CategoryOther
	}

	// Unknown tokens carry no signal under a fixed vocabulary; a text
	// made entirely of them falls back to Other rather than whichever
	// class the priors happen to favour.
	known := 0
	for _, tok := range toks {
		if m.inVocabulary(tok) {
			known++
		}
	}
	if known == 0 {
		return domain.CategoryOther
	}

	classes := make([]domain.Category, 0, len(m.DocsPerClass))
	for class := range m.DocsPerClass {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	best := domain.CategoryOther
	bestScore := math.Inf(-1)
	for _, class := range classes {
		score := math.Log(float64(m.DocsPerClass[class]) / float64(m.TotalDocs))
		denom := m.TotalPerClass[class] + float64(m.VocabularySize)
		for _, tok := range toks {
			if !m.inVocabulary(tok) {
				continue
			}
			score += math.Log((m.TokenCounts[class][tok] + 1) / denom)
		}
		if score > bestScore {
			best = class
			bestScore = score
		}
	}
	return best
}

func (m *model) inVocabulary(tok string) bool {
	for _, counts := range m.TokenCounts {
		if _, ok := counts[tok]; ok {
			return true
		}
	}
	return false
}

// features lowercases, splits on non-alphanumeric runes and emits
// unigrams plus adjacent-word bigrams.
func features(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	feats := make([]string, 0, len(words)*2)
	feats = append(feats, words...)
	for i := 0; i+1 < len(words); i++ {
		feats = append(feats, words[i]+" "+words[i+1])
	}
	return feats
}
