// Package yaml decodes conversation fixtures from YAML files. The document
// layout mirrors the JSON envelope:
//
//	version: 1
//	messages:
//	  - author: Colleague
//	    body: Hey, take a look at Jetpack Compose, it's great!
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/convo"
	"gopkg.in/yaml.v3"
)

type envelope struct {
	Version  int          `yaml:"version"`
	Messages []messageDTO `yaml:"messages"`
}

type messageDTO struct {
	Author string `yaml:"author"`
	Body   string `yaml:"body"`
}

// UnmarshalConversation deserializes a Conversation from a YAML document.
// Unknown keys are rejected.
func UnmarshalConversation(data []byte) (convo.Conversation, error) {
	var env envelope
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document leaves env zero and fails the version check.
	if err := dec.Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("%w: %d", convo.ErrUnsupportedVersion, env.Version)
	}
	conv := make(convo.Conversation, len(env.Messages))
	for i, dto := range env.Messages {
		conv[i] = convo.Message{Author: dto.Author, Body: dto.Body}
	}
	return conv, nil
}

// Load reads a Conversation from a YAML file.
func Load(path string) (convo.Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalConversation(data)
}
