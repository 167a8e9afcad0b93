// Package content loads the static page text: introduction, captions, FAQ,
// references, conclusion and the video embed. The text ships embedded in the
// binary and is parsed once at startup; nothing here changes at runtime.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// FAQEntry is one collapsible question on the page.
type FAQEntry struct {
	Question string   `yaml:"question"`
	Answers  []string `yaml:"answers"`
	Source   string   `yaml:"source"`
	Links    []string `yaml:"links"`
}

// Reference is one entry of the references list.
type Reference struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Content is the full static text of the site.
type Content struct {
	Title           string      `yaml:"title"`
	Byline          string      `yaml:"byline"`
	Intro           []string    `yaml:"intro"`
	ExposureCaption string      `yaml:"exposure_caption"`
	ModelsCaption   string      `yaml:"models_caption"`
	FAQ             []FAQEntry  `yaml:"faq"`
	References      []Reference `yaml:"references"`
	Conclusion      []string    `yaml:"conclusion"`
	VideoURL        string      `yaml:"video_url"`
}

// Load parses the embedded site text. It is called once at startup.
func Load() (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(contentYAML, &c); err != nil {
		return nil, fmt.Errorf("parsing embedded site content: %w", err)
	}
	if c.Title == "" {
		return nil, fmt.Errorf("site content has no title")
	}
	if len(c.Intro) == 0 || len(c.FAQ) == 0 || len(c.References) == 0 {
		return nil, fmt.Errorf("site content is incomplete: intro=%d faq=%d references=%d",
			len(c.Intro), len(c.FAQ), len(c.References))
	}
	for i, f := range c.FAQ {
		if f.Question == "" || len(f.Answers) == 0 {
			return nil, fmt.Errorf("faq entry %d is missing question or answers", i)
		}
	}
	return &c, nil
}
