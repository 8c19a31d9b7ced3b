package formatter

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

const (
	yamlContentType   = "application/yaml"
	yamlFileExtension = ".yaml"
)

// YAMLFormatter emits the sheet as a YAML document. Multi-line bodies come
// out as literal blocks, which keeps long prompts diffable.
type YAMLFormatter struct{}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (yf *YAMLFormatter) Format(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (yf *YAMLFormatter) ContentType() string {
	return yamlContentType
}

func (yf *YAMLFormatter) FileExtension() string {
	return yamlFileExtension
}
