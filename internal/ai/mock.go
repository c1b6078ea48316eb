package ai

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
)

const fallbackBio = "A mysterious individual with untold talents."

var (
	bioPrefixes = []string{
		"Meet",
		"Behold",
		"Introducing",
		"Say hello to",
		"Here comes",
	}
	bioConnectors = []string{
		"who moonlights as",
		"with a passion for",
		"enthusiastically pursuing",
		"obsessed with",
		"secretly devoted to",
	}
	bioEndings = []string{
		"when not saving the world!",
		"in their spare time!",
		"like there's no tomorrow!",
		"with unwavering dedication!",
		"because why not?",
	}
)

// MockBioProvider produces deterministic bios without calling any external
// service. It is the default provider and the one tests rely on.
type MockBioProvider struct{}

func NewMockBioProvider() *MockBioProvider {
	return &MockBioProvider{}
}

// GenerateBio assembles a bio from fixed phrase pools. Three slices of an
// FNV-1a hash over the inputs pick the prefix, connector and ending, so the
// same inputs always yield the same sentence. It never fails; missing job
// title or hobbies yield a fixed fallback sentence.
func (p *MockBioProvider) GenerateBio(_ context.Context, jobTitle string, hobbies []string) (string, error) {
	if jobTitle == "" || len(hobbies) == 0 {
		return fallbackBio, nil
	}

	h := fnv.New32a()
	h.Write([]byte(jobTitle))
	h.Write([]byte(strings.Join(hobbies, "")))
	sum := h.Sum32()

	prefix := bioPrefixes[sum%uint32(len(bioPrefixes))]
	connector := bioConnectors[(sum/10)%uint32(len(bioConnectors))]
	ending := bioEndings[(sum/100)%uint32(len(bioEndings))]

	// At most the first two hobbies make it into the sentence.
	hobbyList := hobbies[0]
	if len(hobbies) > 1 {
		hobbyList = hobbies[0] + " and " + hobbies[1]
	}

	return fmt.Sprintf("%s a %s %s %s %s", prefix, jobTitle, connector, hobbyList, ending), nil
}
