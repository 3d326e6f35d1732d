package classifier

import (
	"errors"

	"github.com/ananyaa0518/resQAI/internal/domain"
)

var errEmptyModel = errors.New("model artifact is empty")

type sample struct {
	text  string
	label domain.Category
}

// The labeled corpus the model is trained on. SOS examples are kept for
// schema compatibility even though SOS alerts never pass through the
// classifier.
var trainingData = []sample{
	{"Heavy rain flooding streets water everywhere", domain.CategoryFlood},
	{"Building on fire smoke flames help", domain.CategoryFire},
	{"Ground shaking earthquake buildings damaged", domain.CategoryEarthquake},
	{"Car accident collision injured people", domain.CategoryAccident},
	{"Emergency help needed urgent danger", domain.CategorySOS},
	{"River overflowing homes submerged flood", domain.CategoryFlood},
	{"Forest fire spreading rapidly evacuate", domain.CategoryFire},
	{"Tremors felt building collapsed earthquake", domain.CategoryEarthquake},
	{"Road accident multiple vehicles crash", domain.CategoryAccident},
	{"Need immediate assistance unsafe situation", domain.CategorySOS},
	{"Flash flood warning water rising fast", domain.CategoryFlood},
	{"Fire broke out in apartment complex", domain.CategoryFire},
	{"Aftershocks continuing building unstable", domain.CategoryEarthquake},
	{"Highway pileup traffic accident", domain.CategoryAccident},
	{"Woman being followed help urgently", domain.CategorySOS},
}
